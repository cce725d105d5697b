package server

import (
	"auction-ledger/internal/metrics"
	"auction-ledger/internal/ratelimit"
	handler "auction-ledger/services/auction/handler"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Options carries the optional collaborators of the router
type Options struct {
	Metrics *metrics.Metrics         // nil disables /metrics
	Limiter *ratelimit.CallerLimiter // nil disables rate limiting
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionHandler *handler.AuctionHandler, opts Options) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery()) // recover from panics
	router.Use(RequestIDMiddleware)
	router.Use(CallerMiddleware)
	router.Use(RequestLoggerMiddleware(opts.Metrics)) // custom request logging
	router.Use(RateLimitMiddleware(opts.Limiter))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	auction := router.Group("/auction")
	{
		auction.GET("", auctionHandler.GetListingHandler)
		auction.GET("/product", auctionHandler.GetProductHandler)
		auction.GET("/bidder", auctionHandler.GetBidderHandler)
		auction.GET("/owner", auctionHandler.GetOwnerHandler)
		auction.GET("/bid", auctionHandler.GetBidHandler)
		auction.GET("/sold", auctionHandler.GetSoldHandler)
		auction.GET("/bidders", auctionHandler.GetBiddersHandler)
	}

	commands := router.Group("/auction", RequireCaller)
	{
		commands.POST("/bids", auctionHandler.PlaceBidHandler)
		commands.POST("/finalize", auctionHandler.FinalizeHandler)
		commands.POST("/withdrawals", auctionHandler.WithdrawHandler)
		commands.PUT("/product", auctionHandler.RenameProductHandler)
	}

	router.GET("/events", auctionHandler.GetEventsHandler)

	return router
}
