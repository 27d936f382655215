package controllers

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

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

// AccessController implements the admin access manager: user approval,
// role changes, pre-approved emails and the audit trail.
type AccessController struct {
	DB     *mongo.Client
	Audit  *repositories.AuditRepository
	logger *log.Logger
}

func NewAccessController(db *mongo.Client) *AccessController {
	return &AccessController{
		DB:     db,
		Audit:  repositories.NewAuditRepository(db),
		logger: log.New(os.Stdout, "[ACCESS] ", log.LstdFlags),
	}
}

// GetUsers lists all accounts, pending first so approvals surface on top.
func (ac *AccessController) GetUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := c.QueryParam("status"); status != "" {
		filter["status"] = status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "status", Value: -1}, {Key: "createdAt", Value: -1}}).
		SetProjection(bson.M{"password": 0, "resetOTP": 0, "resetOTPExpiresAt": 0})

	cursor, err := config.GetCollection(ac.DB, "users").Find(ctx, filter, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch users",
		})
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode users",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Users retrieved",
		Data:    users,
	})
}

// UpdateUserProfile changes role and/or status of an account. Setting the
// INFLUENCIADOR role links the account to a creator profile with the same
// email when one exists.
func (ac *AccessController) UpdateUserProfile(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user id",
		})
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if req.Role != "" {
		switch req.Role {
		case models.RoleAdmin, models.RoleInfluencer, models.RoleGuest:
		default:
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Papel inválido",
			})
		}
	}
	if req.Status != "" {
		switch req.Status {
		case models.UserStatusPending, models.UserStatusApproved, models.UserStatusBlocked:
		default:
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Status inválido",
			})
		}
	}
	if req.Role == "" && req.Status == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "No updatable fields provided",
		})
	}

	usersCol := config.GetCollection(ac.DB, "users")

	var before models.User
	if err := usersCol.FindOne(ctx, bson.M{"_id": id}).Decode(&before); err != nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "User not found",
		})
	}

	// The last administrator cannot demote or block itself out of the system.
	if before.Role == models.RoleAdmin &&
		((req.Role != "" && req.Role != models.RoleAdmin) || req.Status == models.UserStatusBlocked) {
		admins, err := usersCol.CountDocuments(ctx, bson.M{
			"role":   models.RoleAdmin,
			"status": models.UserStatusApproved,
		})
		if err == nil && admins <= 1 {
			return c.JSON(http.StatusConflict, models.Response{
				Status:  http.StatusConflict,
				Message: "Não é possível remover o último administrador",
			})
		}
	}

	update := bson.M{"updatedAt": time.Now()}
	if req.Role != "" {
		update["role"] = req.Role
	}
	if req.Status != "" {
		update["status"] = req.Status
	}

	if req.Role == models.RoleInfluencer && before.InfluencerID == nil {
		var influencer models.Influencer
		err := config.GetCollection(ac.DB, "influencers").
			FindOne(ctx, withNotDeleted(bson.M{"email": before.Email})).Decode(&influencer)
		if err == nil {
			update["influencerId"] = influencer.ID
		}
	}

	if _, err := usersCol.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update}); err != nil {
		ac.logger.Printf("profile update failed for %s: %v", id.Hex(), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update profile",
		})
	}

	var after models.User
	usersCol.FindOne(ctx, bson.M{"_id": id}).Decode(&after)
	after.Password = ""

	if err := ac.Audit.Record(models.AuditEntityProfile, id.Hex(), "UPDATE",
		bson.M{"role": before.Role, "status": before.Status},
		bson.M{"role": after.Role, "status": after.Status},
		middleware.GetUserIDFromToken(c)); err != nil {
		ac.logger.Printf("audit record failed: %v", err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Profile updated",
		Data:    after,
	})
}

// GetPreApprovedEmails lists the pre-approval allowlist.
func (ac *AccessController) GetPreApprovedEmails(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := config.GetCollection(ac.DB, "pre_approved_emails").Find(ctx, bson.M{}, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch pre-approved emails",
		})
	}
	defer cursor.Close(ctx)

	emails := []models.PreApprovedEmail{}
	if err := cursor.All(ctx, &emails); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode pre-approved emails",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Pre-approved emails retrieved",
		Data:    emails,
	})
}

// AddPreApprovedEmail registers an email/role pair on the allowlist.
func (ac *AccessController) AddPreApprovedEmail(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.PreApprovedEmailRequest
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

	switch req.Role {
	case models.RoleAdmin, models.RoleInfluencer, models.RoleGuest:
	default:
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Papel inválido",
		})
	}

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid email address",
		})
	}

	col := config.GetCollection(ac.DB, "pre_approved_emails")

	count, err := col.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to check existing entries",
		})
	}
	if count > 0 {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "Email já pré-aprovado",
		})
	}

	entry := models.PreApprovedEmail{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Role:      req.Role,
		CreatedBy: middleware.GetUserIDFromToken(c),
		CreatedAt: time.Now(),
	}

	if _, err := col.InsertOne(ctx, entry); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to add pre-approved email",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Pre-approved email added",
		Data:    entry,
	})
}

// RemovePreApprovedEmail drops an allowlist entry.
func (ac *AccessController) RemovePreApprovedEmail(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid id",
		})
	}

	result, err := config.GetCollection(ac.DB, "pre_approved_emails").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to remove pre-approved email",
		})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Entry not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Pre-approved email removed",
	})
}

// GetAuditLogs lists audit entries, optionally filtered by entity type and
// entity id.
func (ac *AccessController) GetAuditLogs(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	limit := int64(100)
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	entries, err := ac.Audit.List(ctx, c.QueryParam("entityType"), c.QueryParam("entityId"), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch audit logs",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Audit logs retrieved",
		Data:    entries,
	})
}
