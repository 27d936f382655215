package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/litteagency/litteflux_backend/config"
	"github.com/litteagency/litteflux_backend/middleware"
	"github.com/litteagency/litteflux_backend/models"
	"github.com/litteagency/litteflux_backend/repositories"
)

const (
	splitRulesCacheKey = "settings:" + models.SettingsKeySplitRules
	splitRulesCacheTTL = 5 * time.Minute
)

// SettingsController manages process-wide configuration, currently the
// partner split percentages.
type SettingsController struct {
	DB     *mongo.Client
	Audit  *repositories.AuditRepository
	logger *log.Logger
}

func NewSettingsController(db *mongo.Client) *SettingsController {
	return &SettingsController{
		DB:     db,
		Audit:  repositories.NewAuditRepository(db),
		logger: log.New(os.Stdout, "[SETTINGS] ", log.LstdFlags),
	}
}

// LoadSplitRules reads the configured split, going through the Redis cache
// first. Falls back to the defaults when nothing is configured.
func LoadSplitRules(ctx context.Context, db *mongo.Client) models.SplitRules {
	if config.RedisClient != nil {
		if cached, err := config.RedisClient.Get(ctx, splitRulesCacheKey).Result(); err == nil {
			var rules models.SplitRules
			if json.Unmarshal([]byte(cached), &rules) == nil {
				return rules
			}
		}
	}

	var setting struct {
		Value models.SplitRules `bson:"value"`
	}
	err := config.GetCollection(db, "settings").
		FindOne(ctx, bson.M{"key": models.SettingsKeySplitRules}).Decode(&setting)
	if err != nil {
		return models.DefaultSplitRules()
	}

	rules := setting.Value
	if rules.Validate() != nil {
		return models.DefaultSplitRules()
	}

	if config.RedisClient != nil {
		if payload, err := json.Marshal(rules); err == nil {
			config.RedisClient.Set(ctx, splitRulesCacheKey, payload, splitRulesCacheTTL)
		}
	}
	return rules
}

// GetSplitRules returns the current split configuration.
func (sc *SettingsController) GetSplitRules(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rules := LoadSplitRules(ctx, sc.DB)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Split rules retrieved",
		Data:    rules,
	})
}

// UpdateSplitRules replaces the split configuration. The percentages must
// sum to exactly 100; validation happens here and nowhere else.
func (sc *SettingsController) UpdateSplitRules(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var rules models.SplitRules
	if err := c.Bind(&rules); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := rules.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	old := LoadSplitRules(ctx, sc.DB)

	_, err := config.GetCollection(sc.DB, "settings").UpdateOne(ctx,
		bson.M{"key": models.SettingsKeySplitRules},
		bson.M{"$set": bson.M{
			"value":      rules,
			"updated_at": time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		sc.logger.Printf("split rules update failed: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update split rules",
		})
	}

	if config.RedisClient != nil {
		config.RedisClient.Del(ctx, splitRulesCacheKey)
	}

	if err := sc.Audit.Record(models.AuditEntityFinanceConfig, models.SettingsKeySplitRules, "UPDATE", old, rules, middleware.GetUserIDFromToken(c)); err != nil {
		sc.logger.Printf("audit record failed: %v", err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Split rules updated",
		Data:    rules,
	})
}
