package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mbspricer/internal/domain"
	"mbspricer/internal/logger"
	"mbspricer/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	PricingService      service.PricingService
	DiscountRateService service.DiscountRateService
}

// InitializeRouterEngine builds the gin engine with middleware and
// routes attached. The lambda entry point wraps this engine directly.
func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to mbspricer"})
	})
	router.POST("/price", m.price)
	router.POST("/price/csv", m.priceCsv)
	router.GET("/suggested-discount-rate", m.suggestedDiscountRate)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnPricingError maps caller mistakes to 400s and everything else
// to 500s.
func returnPricingError(err error, c *gin.Context) {
	if errors.Is(err, domain.ErrInvalidParameters) {
		returnErrorJsonCode(err, c, 400)
		return
	}
	returnErrorJson(err, c)
}

// logRequestMiddlware tags each request with an id, scopes the logger
// to it, and logs route, status, and duration on completion.
func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	requestID := uuid.New().String()
	lg := logger.New().With("requestId", requestID)

	newCtx := context.WithValue(ctx.Request.Context(), logger.ContextKey, lg)
	ctx.Request = ctx.Request.WithContext(newCtx)
	ctx.Header("X-Request-Id", requestID)

	start := time.Now().UTC()
	ctx.Next()

	lg.Infof("%s %s -> %d in %dms",
		ctx.Request.Method,
		ctx.Request.URL.Path,
		ctx.Writer.Status(),
		time.Since(start).Milliseconds(),
	)
}
