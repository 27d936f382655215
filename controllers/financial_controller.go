package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/litteagency/litteflux_backend/config"
	"github.com/litteagency/litteflux_backend/models"
	"github.com/litteagency/litteflux_backend/services"
)

// FinancialController serves the finance screen: consolidated cash flow and
// the partner split breakdown.
type FinancialController struct {
	DB *mongo.Client
}

func NewFinancialController(db *mongo.Client) *FinancialController {
	return &FinancialController{DB: db}
}

func (fc *FinancialController) loadCampaigns(ctx context.Context) ([]models.Campaign, error) {
	cursor, err := config.GetCollection(fc.DB, "campaigns").Find(ctx, withNotDeleted(bson.M{}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	campaigns := []models.Campaign{}
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	for i := range campaigns {
		campaigns[i].ApplyDefaults()
	}
	return campaigns, nil
}

// GetSummary returns the consolidated cash-flow totals.
func (fc *FinancialController) GetSummary(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	campaigns, err := fc.loadCampaigns(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch campaigns",
		})
	}

	summary := services.Summarize(campaigns)
	rules := LoadSplitRules(ctx, fc.DB)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Financial summary retrieved",
		Data: map[string]interface{}{
			"summary":   summary,
			"rules":     rules,
			"breakdown": services.ApplySplit(summary.Balance, rules),
		},
	})
}

// GetSplitBreakdown allocates the collected agency balance among the
// internal stakeholders using the configured split rules.
func (fc *FinancialController) GetSplitBreakdown(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	campaigns, err := fc.loadCampaigns(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch campaigns",
		})
	}

	summary := services.Summarize(campaigns)
	rules := LoadSplitRules(ctx, fc.DB)
	breakdown := services.ApplySplit(summary.Balance, rules)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Split breakdown retrieved",
		Data: map[string]interface{}{
			"total":     summary.Balance,
			"rules":     rules,
			"breakdown": breakdown,
		},
	})
}
