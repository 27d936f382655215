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
	"github.com/litteagency/litteflux_backend/services"
	"github.com/litteagency/litteflux_backend/utils"
	"github.com/litteagency/litteflux_backend/websocket"
)

// LeadController handles the prospecting pipeline.
type LeadController struct {
	DB     *mongo.Client
	Hub    *websocket.Hub
	Audit  *repositories.AuditRepository
	logger *log.Logger
}

// NewLeadController creates a new lead controller
func NewLeadController(db *mongo.Client, hub *websocket.Hub) *LeadController {
	return &LeadController{
		DB:     db,
		Hub:    hub,
		Audit:  repositories.NewAuditRepository(db),
		logger: log.New(os.Stdout, "[LEADS] ", log.LstdFlags),
	}
}

// notDeleted excludes soft-deleted documents.
var notDeleted = bson.M{"deleted_at": bson.M{"$exists": false}}

func withNotDeleted(filter bson.M) bson.M {
	merged := bson.M{}
	for k, v := range filter {
		merged[k] = v
	}
	for k, v := range notDeleted {
		merged[k] = v
	}
	return merged
}

// GetLeads lists active leads, newest first. Optional status and phase query
// filters narrow the pipeline view.
func (lc *LeadController) GetLeads(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := c.QueryParam("status"); status != "" {
		filter["status"] = status
	}
	if phase := c.QueryParam("phase"); phase != "" {
		filter["phase"] = phase
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := config.GetCollection(lc.DB, "leads").Find(ctx, withNotDeleted(filter), opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch leads",
		})
	}
	defer cursor.Close(ctx)

	leads := []models.Lead{}
	if err := cursor.All(ctx, &leads); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode leads",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Leads retrieved",
		Data:    leads,
	})
}

// GetLead returns a single lead by id.
func (lc *LeadController) GetLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid lead id",
		})
	}

	var lead models.Lead
	err = config.GetCollection(lc.DB, "leads").
		FindOne(ctx, withNotDeleted(bson.M{"_id": id})).Decode(&lead)
	if err != nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Lead not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Lead retrieved",
		Data:    lead,
	})
}

// CreateLead opens a new prospecting record in the first pipeline phase.
func (lc *LeadController) CreateLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.CreateLeadRequest
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

	phase := req.Phase
	if phase == "" {
		phase = models.LeadPhaseContact
	}
	status := req.Status
	if status == "" {
		status = models.LeadStatusWaiting
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

	claims := middleware.GetUserFromToken(c)
	responsible := ""
	actorID := ""
	if claims != nil {
		responsible = claims.Email
		actorID = claims.UserID
	}

	now := time.Now()
	lead := models.Lead{
		ID:             primitive.NewObjectID(),
		Brand:          utils.SanitizeInput(req.Brand),
		CampaignObject: utils.SanitizeInput(req.CampaignObject),
		InfluencerIDs:  influencerIDs,
		Phase:          phase,
		Status:         status,
		ProposedValue:  req.ProposedValue,
		Scope:          req.Scope,
		StartDate:      utils.NormalizeDate(req.StartDate),
		LastContact:    utils.FormatDateISO(now),
		Responsible:    responsible,
		Timeline: []models.TimelineEntry{{
			ID:     uuid.NewString(),
			Date:   utils.FormatDateBR(now),
			Action: "Prospecção criada",
			User:   responsible,
		}},
		CreatedAt: now,
	}

	if _, err := config.GetCollection(lc.DB, "leads").InsertOne(ctx, lead); err != nil {
		lc.logger.Printf("lead insert failed: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create lead",
		})
	}

	if err := lc.Audit.Record(models.AuditEntityLead, lead.ID.Hex(), "CREATE", nil, lead, actorID); err != nil {
		lc.logger.Printf("audit record failed: %v", err)
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Lead created",
		Data:    lead,
	})
}

// UpdateLead patches editable lead fields. Status changes must go through
// UpdateLeadStatus so the closure pipeline cannot be bypassed.
func (lc *LeadController) UpdateLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid lead id",
		})
	}

	var body map[string]interface{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	allowed := map[string]string{
		"brand":          "brand",
		"campaignObject": "campaign_object",
		"phase":          "phase",
		"proposedValue":  "proposed_value",
		"value":          "value",
		"scope":          "scope",
		"startDate":      "start_date",
		"lastContact":    "last_contact",
		"lastMessage":    "last_message",
		"responsible":    "responsible",
	}

	dateFields := map[string]bool{"start_date": true, "last_contact": true}

	update := bson.M{}
	for jsonKey, bsonKey := range allowed {
		if v, ok := body[jsonKey]; ok {
			if s, isStr := v.(string); isStr && dateFields[bsonKey] {
				update[bsonKey] = utils.NormalizeDate(s)
				continue
			}
			update[bsonKey] = v
		}
	}
	if len(update) == 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "No updatable fields provided",
		})
	}

	leadsCol := config.GetCollection(lc.DB, "leads")

	var before models.Lead
	if err := leadsCol.FindOne(ctx, withNotDeleted(bson.M{"_id": id})).Decode(&before); err != nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Lead not found",
		})
	}
	if before.IsTerminal() {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "Lead já finalizado",
		})
	}

	if _, err := leadsCol.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update}); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update lead",
		})
	}

	var after models.Lead
	leadsCol.FindOne(ctx, bson.M{"_id": id}).Decode(&after)

	if err := lc.Audit.Record(models.AuditEntityLead, id.Hex(), "UPDATE", before, after, middleware.GetUserIDFromToken(c)); err != nil {
		lc.logger.Printf("audit record failed: %v", err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Lead updated",
		Data:    after,
	})
}

// UpdateLeadStatus performs a pipeline transition. Closing a lead (FECHADO)
// triggers the one-time conversion into a planning-stage campaign; refusing
// one (RECUSADO) requires a reason. Both end states are final.
func (lc *LeadController) UpdateLeadStatus(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid lead id",
		})
	}

	var req models.UpdateLeadStatusRequest
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

	switch req.Status {
	case models.LeadStatusWaiting, models.LeadStatusRefused, models.LeadStatusClosed:
	default:
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Status inválido",
		})
	}

	if req.Status == models.LeadStatusRefused && req.LastMessage == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Recusa exige um motivo",
		})
	}

	leadsCol := config.GetCollection(lc.DB, "leads")

	var lead models.Lead
	if err := leadsCol.FindOne(ctx, withNotDeleted(bson.M{"_id": id})).Decode(&lead); err != nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Lead not found",
		})
	}

	if lead.IsTerminal() && lead.Status != req.Status {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "Lead já finalizado",
		})
	}

	claims := middleware.GetUserFromToken(c)
	actorID := ""
	actorName := ""
	if claims != nil {
		actorID = claims.UserID
		actorName = claims.Email
	}

	now := time.Now()
	var createdCampaign *models.Campaign

	if req.Status == models.LeadStatusClosed {
		result := services.ConvertLeadToCampaign(lead, services.ClosureContext{
			StartDate:   req.StartDate,
			ClosedValue: req.ClosedValue,
			LastMessage: req.LastMessage,
			ActorID:     actorID,
			ActorName:   actorName,
		}, now)

		if result != nil {
			if _, err := config.GetCollection(lc.DB, "campaigns").InsertOne(ctx, result.Campaign); err != nil {
				lc.logger.Printf("campaign insert failed for lead %s: %v", id.Hex(), err)
				return c.JSON(http.StatusInternalServerError, models.Response{
					Status:  http.StatusInternalServerError,
					Message: "Failed to create campaign from lead",
				})
			}
			createdCampaign = &result.Campaign

			lc.persistNotification(ctx, result.Notification)

			update := bson.M{
				"$set": bson.M{
					"status":       models.LeadStatusClosed,
					"closed_value": result.Campaign.Financial.GrossValue,
					"last_message": req.LastMessage,
				},
				"$push": bson.M{"timeline": result.TimelineEntry},
			}
			if req.StartDate != "" {
				update["$set"].(bson.M)["start_date"] = utils.NormalizeDate(req.StartDate)
			}
			if _, err := leadsCol.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
				lc.logger.Printf("lead close update failed for %s: %v", id.Hex(), err)
			}

			if err := lc.Audit.Record(models.AuditEntityCampaign, result.Campaign.ID.Hex(), "CREATE_FROM_LEAD", nil, result.Campaign, actorID); err != nil {
				lc.logger.Printf("audit record failed: %v", err)
			}
		}
	} else {
		entry := models.TimelineEntry{
			ID:     uuid.NewString(),
			Date:   utils.FormatDateBR(now),
			Action: "Alteração para " + req.Status,
			User:   actorName,
			Notes:  req.LastMessage,
		}
		update := bson.M{
			"$set":  bson.M{"status": req.Status},
			"$push": bson.M{"timeline": entry},
		}
		if req.LastMessage != "" {
			update["$set"].(bson.M)["last_message"] = req.LastMessage
		}
		if _, err := leadsCol.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
			return c.JSON(http.StatusInternalServerError, models.Response{
				Status:  http.StatusInternalServerError,
				Message: "Failed to update lead status",
			})
		}
	}

	var after models.Lead
	leadsCol.FindOne(ctx, bson.M{"_id": id}).Decode(&after)

	if err := lc.Audit.Record(models.AuditEntityLead, id.Hex(), "STATUS_CHANGE", bson.M{"status": lead.Status}, bson.M{"status": after.Status}, actorID); err != nil {
		lc.logger.Printf("audit record failed: %v", err)
	}

	data := map[string]interface{}{"lead": after}
	if createdCampaign != nil {
		data["campaign"] = createdCampaign
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Status atualizado",
		Data:    data,
	})
}

// persistNotification stores the conversion notification for every active
// admin and pushes it over the websocket hub. Failures are logged only.
func (lc *LeadController) persistNotification(ctx context.Context, req models.NotificationRequest) {
	campaignID, err := primitive.ObjectIDFromHex(req.CampaignID)
	if err != nil {
		return
	}

	cursor, err := config.GetCollection(lc.DB, "users").Find(ctx, bson.M{
		"role":   models.RoleAdmin,
		"status": models.UserStatusApproved,
	})
	if err != nil {
		lc.logger.Printf("failed to list admins for notification: %v", err)
		return
	}
	defer cursor.Close(ctx)

	var admins []models.User
	if err := cursor.All(ctx, &admins); err != nil {
		lc.logger.Printf("failed to decode admins for notification: %v", err)
		return
	}

	notifCol := config.GetCollection(lc.DB, "notifications")
	for _, admin := range admins {
		notification := models.Notification{
			ID:         primitive.NewObjectID(),
			UserID:     admin.ID,
			CampaignID: campaignID,
			Title:      req.Title,
			Message:    req.Message,
			Type:       req.Type,
			EventDate:  req.EventDate,
			CreatedAt:  time.Now(),
		}
		if _, err := notifCol.InsertOne(ctx, notification); err != nil {
			lc.logger.Printf("notification insert failed for %s: %v", admin.ID.Hex(), err)
			continue
		}

		if err := lc.Hub.SendToUser(admin.ID, websocket.Event{
			Type:    websocket.EventCampaignCreated,
			Message: req.Message,
			Data:    notification,
			UserID:  admin.ID.Hex(),
		}); err != nil {
			// Offline users read the stored notification later.
			continue
		}
	}
}

// DeleteLead soft-deletes a lead.
func (lc *LeadController) DeleteLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid lead id",
		})
	}

	now := time.Now()
	result, err := config.GetCollection(lc.DB, "leads").UpdateOne(ctx,
		withNotDeleted(bson.M{"_id": id}),
		bson.M{"$set": bson.M{"deleted_at": now}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete lead",
		})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Lead not found",
		})
	}

	if err := lc.Audit.Record(models.AuditEntityLead, id.Hex(), "DELETE", nil, bson.M{"deleted_at": now}, middleware.GetUserIDFromToken(c)); err != nil {
		lc.logger.Printf("audit record failed: %v", err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Lead removido",
	})
}
