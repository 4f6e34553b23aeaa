package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/product-transactions/internal/platform/logger"
	"github.com/ridloal/product-transactions/internal/transaction/domain"
	"github.com/ridloal/product-transactions/internal/transaction/service"
)

const (
	errInternal      = "Internal server error"
	totalCountHeader = "X-Total-Count"
)

type TransactionHandler struct {
	transactionService service.TransactionService
}

func NewTransactionHandler(ts service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: ts}
}

func (h *TransactionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/transactions", h.ListTransactions)
	router.GET("/statistics", h.GetStatistics)
	router.GET("/bar-chart", h.GetBarChart)
	router.GET("/pie-chart", h.GetPieChart)
	router.GET("/combined", h.GetCombined)
}

func badQuery(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
}

func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var q domain.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badQuery(c, err)
		return
	}

	page, err := h.transactionService.ListTransactions(c.Request.Context(), q)
	if err != nil {
		logger.Error("Error fetching transactions", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
		return
	}
	c.Header(totalCountHeader, strconv.FormatInt(page.Total, 10))
	c.JSON(http.StatusOK, page.Items)
}

func (h *TransactionHandler) GetStatistics(c *gin.Context) {
	var q domain.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badQuery(c, err)
		return
	}

	stats, err := h.transactionService.GetStatistics(c.Request.Context(), q)
	if err != nil {
		logger.Error("Error fetching statistics", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *TransactionHandler) GetBarChart(c *gin.Context) {
	var q domain.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badQuery(c, err)
		return
	}

	chart, err := h.transactionService.GetBarChart(c.Request.Context(), q)
	if err != nil {
		logger.Error("Error fetching bar chart data", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
		return
	}
	c.JSON(http.StatusOK, chart)
}

func (h *TransactionHandler) GetPieChart(c *gin.Context) {
	var q domain.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badQuery(c, err)
		return
	}

	chart, err := h.transactionService.GetPieChart(c.Request.Context(), q)
	if err != nil {
		logger.Error("Error fetching pie chart data", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
		return
	}
	c.JSON(http.StatusOK, chart)
}

func (h *TransactionHandler) GetCombined(c *gin.Context) {
	var q domain.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badQuery(c, err)
		return
	}

	report, err := h.transactionService.GetCombined(c.Request.Context(), q)
	if err != nil {
		logger.Error("Error fetching combined report", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *TransactionHandler) Health(c *gin.Context) {
	if err := h.transactionService.CheckHealth(c.Request.Context()); err != nil {
		logger.Error("Health check failed", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
