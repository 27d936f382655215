package controllers

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/litteagency/litteflux_backend/config"
	"github.com/litteagency/litteflux_backend/middleware"
	"github.com/litteagency/litteflux_backend/models"
	"github.com/litteagency/litteflux_backend/repositories"
	"github.com/litteagency/litteflux_backend/utils"
)

// CampaignController handles contracted campaigns and their delivery
// sub-stages.
type CampaignController struct {
	DB     *mongo.Client
	Audit  *repositories.AuditRepository
	logger *log.Logger
}

// NewCampaignController creates a new campaign controller
func NewCampaignController(db *mongo.Client) *CampaignController {
	return &CampaignController{
		DB:     db,
		Audit:  repositories.NewAuditRepository(db),
		logger: log.New(os.Stdout, "[CAMPAIGNS] ", log.LstdFlags),
	}
}

// normalizeCampaignDates rewrites every free-form date field to ISO at the
// write boundary. Unparseable values pass through untouched.
func normalizeCampaignDates(cp *models.Campaign) {
	n := utils.NormalizeDate

	cp.StartDate = n(cp.StartDate)
	cp.EndDate = n(cp.EndDate)
	cp.Contract.DueDate = n(cp.Contract.DueDate)
	cp.Contract.SignedDate = n(cp.Contract.SignedDate)
	cp.Product.ShippingDate = n(cp.Product.ShippingDate)
	cp.Script.DueDate = n(cp.Script.DueDate)
	cp.Script.DeliveredDate = n(cp.Script.DeliveredDate)
	cp.Script.ApprovalDate = n(cp.Script.ApprovalDate)
	for i := range cp.Content.Items {
		cp.Content.Items[i].PostDate = n(cp.Content.Items[i].PostDate)
	}
	cp.Posting.Date = n(cp.Posting.Date)
	cp.Posting.ActualDate = n(cp.Posting.ActualDate)
	cp.Metrics.DueDate = n(cp.Metrics.DueDate)
	cp.Invoice.IssueDate = n(cp.Invoice.IssueDate)
	cp.Invoice.PaymentDueDate = n(cp.Invoice.PaymentDueDate)
	cp.Payout.Date = n(cp.Payout.Date)
	cp.Financial.ExpectedPaymentDate = n(cp.Financial.ExpectedPaymentDate)
}

// GetCampaigns lists active campaigns, newest first. The optional status
// query filter narrows the board.
func (cc *CampaignController) GetCampaigns(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := c.QueryParam("status"); status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := config.GetCollection(cc.DB, "campaigns").Find(ctx, withNotDeleted(filter), opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch campaigns",
		})
	}
	defer cursor.Close(ctx)

	campaigns := []models.Campaign{}
	if err := cursor.All(ctx, &campaigns); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode campaigns",
		})
	}

	for i := range campaigns {
		campaigns[i].ApplyDefaults()
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Campaigns retrieved",
		Data:    campaigns,
	})
}

// GetCampaign returns a single campaign by id.
func (cc *CampaignController) GetCampaign(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid campaign id",
		})
	}

	var campaign models.Campaign
	err = config.GetCollection(cc.DB, "campaigns").
		FindOne(ctx, withNotDeleted(bson.M{"_id": id})).Decode(&campaign)
	if err != nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Campaign not found",
		})
	}

	campaign.ApplyDefaults()

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Campaign retrieved",
		Data:    campaign,
	})
}

// CreateCampaign opens a campaign directly, without going through the
// prospecting pipeline.
func (cc *CampaignController) CreateCampaign(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.CreateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	influencerIDs := []primitive.ObjectID{}
	if req.InfluencerID != "" {
		infID, err := primitive.ObjectIDFromHex(req.InfluencerID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Invalid influencer id",
			})
		}
		influencerIDs = append(influencerIDs, infID)
	}

	title := req.Title
	if title == "" {
		title = req.Brand
	}

	actor := ""
	if claims := middleware.GetUserFromToken(c); claims != nil {
		actor = claims.Email
	}

	now := time.Now()
	nowISO := now.Format(time.RFC3339)

	financial := models.DefaultFinancial()
	financial.GrossValue = req.Value
	financial.CreatedAt = nowISO
	financial.UpdatedAt = nowISO

	campaign := models.Campaign{
		ID:            primitive.NewObjectID(),
		Title:         utils.SanitizeInput(title),
		Brand:         utils.SanitizeInput(req.Brand),
		InfluencerIDs: influencerIDs,
		Status:        models.CampaignStatusPlanning,
		StartDate:     utils.NormalizeDate(req.StartDate),
		Briefing:      req.Briefing,
		Contract:      models.DefaultContract(),
		Product:       models.DefaultProduct(),
		Script:        models.DefaultScript(),
		Content:       models.DefaultContent(),
		Posting:       models.DefaultPosting(),
		Metrics:       models.DefaultMetrics(),
		Invoice:       models.DefaultInvoice(),
		Payout:        models.DefaultPayout(),
		Financial:     financial,
		Checklist:     []models.ChecklistItem{},
		Timeline: []models.TimelineEntry{{
			ID:     uuid.NewString(),
			Date:   utils.FormatDateBR(now),
			Action: "Campanha criada",
			User:   actor,
		}},
		CreatedAt: now,
	}

	if _, err := config.GetCollection(cc.DB, "campaigns").InsertOne(ctx, campaign); err != nil {
		cc.logger.Printf("campaign insert failed: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create campaign",
		})
	}

	if err := cc.Audit.Record(models.AuditEntityCampaign, campaign.ID.Hex(), "CREATE", nil, campaign, middleware.GetUserIDFromToken(c)); err != nil {
		cc.logger.Printf("audit record failed: %v", err)
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Campaign created",
		Data:    campaign,
	})
}

// UpdateCampaign replaces the editable body of a campaign. The client sends
// the full document; identity and bookkeeping fields are preserved
// server-side and every date field is normalized before write.
func (cc *CampaignController) UpdateCampaign(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid campaign id",
		})
	}

	campaignsCol := config.GetCollection(cc.DB, "campaigns")

	var before models.Campaign
	if err := campaignsCol.FindOne(ctx, withNotDeleted(bson.M{"_id": id})).Decode(&before); err != nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Campaign not found",
		})
	}

	var incoming models.Campaign
	if err := c.Bind(&incoming); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if incoming.Status != "" {
		switch incoming.Status {
		case models.CampaignStatusPlanning, models.CampaignStatusExecution, models.CampaignStatusCompleted:
		default:
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Status inválido",
			})
		}
	}

	incoming.ID = before.ID
	incoming.CreatedAt = before.CreatedAt
	incoming.DeletedAt = before.DeletedAt
	if incoming.Timeline == nil {
		incoming.Timeline = before.Timeline
	}
	incoming.ApplyDefaults()
	normalizeCampaignDates(&incoming)
	incoming.Financial.UpdatedAt = time.Now().Format(time.RFC3339)

	if _, err := campaignsCol.ReplaceOne(ctx, bson.M{"_id": id}, incoming); err != nil {
		cc.logger.Printf("campaign update failed for %s: %v", id.Hex(), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update campaign",
		})
	}

	if err := cc.Audit.Record(models.AuditEntityCampaign, id.Hex(), "UPDATE", before, incoming, middleware.GetUserIDFromToken(c)); err != nil {
		cc.logger.Printf("audit record failed: %v", err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Campaign updated",
		Data:    incoming,
	})
}

// AddTimelineEntry appends a history record to a campaign.
func (cc *CampaignController) AddTimelineEntry(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid campaign id",
		})
	}

	var body struct {
		Action string `json:"action" validate:"required"`
		Notes  string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	actor := ""
	if claims := middleware.GetUserFromToken(c); claims != nil {
		actor = claims.Email
	}

	entry := models.TimelineEntry{
		ID:     uuid.NewString(),
		Date:   utils.FormatDateBR(time.Now()),
		Action: body.Action,
		User:   actor,
		Notes:  body.Notes,
	}

	result, err := config.GetCollection(cc.DB, "campaigns").UpdateOne(ctx,
		withNotDeleted(bson.M{"_id": id}),
		bson.M{"$push": bson.M{"timeline": entry}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to add timeline entry",
		})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Campaign not found",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Timeline entry added",
		Data:    entry,
	})
}

// DeleteCampaign soft-deletes a campaign.
func (cc *CampaignController) DeleteCampaign(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid campaign id",
		})
	}

	now := time.Now()
	result, err := config.GetCollection(cc.DB, "campaigns").UpdateOne(ctx,
		withNotDeleted(bson.M{"_id": id}),
		bson.M{"$set": bson.M{"deleted_at": now}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete campaign",
		})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Campaign not found",
		})
	}

	if err := cc.Audit.Record(models.AuditEntityCampaign, id.Hex(), "DELETE", nil, bson.M{"deleted_at": now}, middleware.GetUserIDFromToken(c)); err != nil {
		cc.logger.Printf("audit record failed: %v", err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Campanha removida",
	})
}
