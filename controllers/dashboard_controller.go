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

// DashboardController aggregates the home screen numbers.
type DashboardController struct {
	DB *mongo.Client
}

func NewDashboardController(db *mongo.Client) *DashboardController {
	return &DashboardController{DB: db}
}

// DashboardStats is the home screen summary block.
type DashboardStats struct {
	ActiveCampaigns   int64                   `json:"activeCampaigns"`
	LeadsInPipeline   int64                   `json:"leadsInPipeline"`
	ActiveInfluencers int64                   `json:"activeInfluencers"`
	Cash              services.CashSummary    `json:"cash"`
	Deadlines         services.DeadlineReport `json:"deadlines"`
}

func (dc *DashboardController) loadActiveCampaigns(ctx context.Context) ([]models.Campaign, error) {
	cursor, err := config.GetCollection(dc.DB, "campaigns").Find(ctx, withNotDeleted(bson.M{
		"status": bson.M{"$ne": models.CampaignStatusCompleted},
	}))
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

func (dc *DashboardController) loadInfluencers(ctx context.Context) ([]models.Influencer, error) {
	cursor, err := config.GetCollection(dc.DB, "influencers").Find(ctx, withNotDeleted(bson.M{}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	influencers := []models.Influencer{}
	if err := cursor.All(ctx, &influencers); err != nil {
		return nil, err
	}
	return influencers, nil
}

// GetStats returns campaign, lead and influencer counters plus the cash
// summary and the deadline report in a single call.
func (dc *DashboardController) GetStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	campaigns, err := dc.loadActiveCampaigns(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch campaigns",
		})
	}

	influencers, err := dc.loadInfluencers(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch influencers",
		})
	}

	leadsInPipeline, err := config.GetCollection(dc.DB, "leads").CountDocuments(ctx, withNotDeleted(bson.M{
		"status": models.LeadStatusWaiting,
	}))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to count leads",
		})
	}

	activeInfluencers := int64(0)
	for _, inf := range influencers {
		if inf.Status == models.InfluencerStatusActive {
			activeInfluencers++
		}
	}

	stats := DashboardStats{
		ActiveCampaigns:   int64(len(campaigns)),
		LeadsInPipeline:   leadsInPipeline,
		ActiveInfluencers: activeInfluencers,
		Cash:              services.Summarize(campaigns),
		Deadlines:         services.AggregateDeadlines(campaigns, influencers, time.Now()),
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Dashboard stats retrieved",
		Data:    stats,
	})
}

// GetDeadlines returns only the deadline report. The dashboard polls this
// endpoint on a shorter interval than the full stats call.
func (dc *DashboardController) GetDeadlines(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	campaigns, err := dc.loadActiveCampaigns(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch campaigns",
		})
	}

	influencers, err := dc.loadInfluencers(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch influencers",
		})
	}

	report := services.AggregateDeadlines(campaigns, influencers, time.Now())

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Deadline report retrieved",
		Data:    report,
	})
}
