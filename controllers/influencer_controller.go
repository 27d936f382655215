package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
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

const avatarMaxSize = 512

// InfluencerController handles creator profiles.
type InfluencerController struct {
	DB     *mongo.Client
	Audit  *repositories.AuditRepository
	logger *log.Logger
}

// NewInfluencerController creates a new influencer controller
func NewInfluencerController(db *mongo.Client) *InfluencerController {
	return &InfluencerController{
		DB:     db,
		Audit:  repositories.NewAuditRepository(db),
		logger: log.New(os.Stdout, "[INFLUENCERS] ", log.LstdFlags),
	}
}

// GetInfluencers lists active influencers, newest first.
func (ic *InfluencerController) GetInfluencers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := c.QueryParam("status"); status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := config.GetCollection(ic.DB, "influencers").Find(ctx, withNotDeleted(filter), opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch influencers",
		})
	}
	defer cursor.Close(ctx)

	influencers := []models.Influencer{}
	if err := cursor.All(ctx, &influencers); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode influencers",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Influencers retrieved",
		Data:    influencers,
	})
}

// GetInfluencer returns a single influencer by id.
func (ic *InfluencerController) GetInfluencer(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid influencer id",
		})
	}

	var influencer models.Influencer
	err = config.GetCollection(ic.DB, "influencers").
		FindOne(ctx, withNotDeleted(bson.M{"_id": id})).Decode(&influencer)
	if err != nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Influencer not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Influencer retrieved",
		Data:    influencer,
	})
}

// CreateInfluencer registers a creator profile. Self-registration sends a
// partial document; identity fields are required, everything else optional.
func (ic *InfluencerController) CreateInfluencer(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var influencer models.Influencer
	if err := c.Bind(&influencer); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if influencer.Name == "" || influencer.Email == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Nome e email são obrigatórios",
		})
	}

	email, err := utils.SanitizeEmail(influencer.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid email address",
		})
	}

	now := time.Now()
	influencer.ID = primitive.NewObjectID()
	influencer.Name = utils.SanitizeInput(influencer.Name)
	influencer.Email = email
	if influencer.Status == "" {
		influencer.Status = models.InfluencerStatusActive
	}
	if influencer.RegisteredAt == "" {
		influencer.RegisteredAt = utils.FormatDateISO(now)
	} else {
		influencer.RegisteredAt = utils.NormalizeDate(influencer.RegisteredAt)
	}
	if influencer.BankAccountType == "" {
		influencer.BankAccountType = "PF"
	}
	influencer.CreatedAt = now
	influencer.DeletedAt = nil

	if _, err := config.GetCollection(ic.DB, "influencers").InsertOne(ctx, influencer); err != nil {
		ic.logger.Printf("influencer insert failed: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create influencer",
		})
	}

	if err := ic.Audit.Record(models.AuditEntityInfluencer, influencer.ID.Hex(), "CREATE", nil, influencer, middleware.GetUserIDFromToken(c)); err != nil {
		ic.logger.Printf("audit record failed: %v", err)
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Influencer created",
		Data:    influencer,
	})
}

// UpdateInfluencer replaces the editable body of a profile.
func (ic *InfluencerController) UpdateInfluencer(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid influencer id",
		})
	}

	col := config.GetCollection(ic.DB, "influencers")

	var before models.Influencer
	if err := col.FindOne(ctx, withNotDeleted(bson.M{"_id": id})).Decode(&before); err != nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Influencer not found",
		})
	}

	var incoming models.Influencer
	if err := c.Bind(&incoming); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	incoming.ID = before.ID
	incoming.CreatedAt = before.CreatedAt
	incoming.DeletedAt = before.DeletedAt
	if incoming.Avatar == "" {
		incoming.Avatar = before.Avatar
	}
	incoming.RegisteredAt = utils.NormalizeDate(incoming.RegisteredAt)
	incoming.PJFoundedAt = utils.NormalizeDate(incoming.PJFoundedAt)

	if _, err := col.ReplaceOne(ctx, bson.M{"_id": id}, incoming); err != nil {
		ic.logger.Printf("influencer update failed for %s: %v", id.Hex(), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update influencer",
		})
	}

	if err := ic.Audit.Record(models.AuditEntityInfluencer, id.Hex(), "UPDATE", before, incoming, middleware.GetUserIDFromToken(c)); err != nil {
		ic.logger.Printf("audit record failed: %v", err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Influencer updated",
		Data:    incoming,
	})
}

// UploadAvatar stores a resized profile picture and records its URL.
func (ic *InfluencerController) UploadAvatar(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid influencer id",
		})
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Missing avatar file",
		})
	}
	if !utils.IsValidImageFile(file) {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Unsupported image type",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to read upload",
		})
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid image data",
		})
	}

	resized := imaging.Fit(img, avatarMaxSize, avatarMaxSize, imaging.Lanczos)

	uploadDir := filepath.Join("uploads", "avatars")
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to prepare upload directory",
		})
	}

	filename := fmt.Sprintf("%s_%d.jpg", id.Hex(), time.Now().UnixNano())
	path := filepath.Join(uploadDir, filename)
	if err := imaging.Save(resized, path, imaging.JPEGQuality(85)); err != nil {
		ic.logger.Printf("avatar save failed for %s: %v", id.Hex(), err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to save avatar",
		})
	}

	avatarURL := "/uploads/avatars/" + filename
	result, err := config.GetCollection(ic.DB, "influencers").UpdateOne(ctx,
		withNotDeleted(bson.M{"_id": id}),
		bson.M{"$set": bson.M{"avatar": avatarURL}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update avatar",
		})
	}
	if result.MatchedCount == 0 {
		os.Remove(path)
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Influencer not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Avatar updated",
		Data:    map[string]string{"avatar": avatarURL},
	})
}

// DeleteInfluencer soft-deletes a profile.
func (ic *InfluencerController) DeleteInfluencer(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid influencer id",
		})
	}

	now := time.Now()
	result, err := config.GetCollection(ic.DB, "influencers").UpdateOne(ctx,
		withNotDeleted(bson.M{"_id": id}),
		bson.M{"$set": bson.M{"deleted_at": now}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete influencer",
		})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Influencer not found",
		})
	}

	if err := ic.Audit.Record(models.AuditEntityInfluencer, id.Hex(), "DELETE", nil, bson.M{"deleted_at": now}, middleware.GetUserIDFromToken(c)); err != nil {
		ic.logger.Printf("audit record failed: %v", err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Influenciador removido",
	})
}
