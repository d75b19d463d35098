package controllers

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/tourguideapp/backend/models"
	"gorm.io/gorm"
)

const (
	businessCacheKey = "businesses:all"
	businessCacheTTL = 60 * time.Second
)

type BusinessController struct {
	DB    *gorm.DB
	Cache *redis.Client // nil disables caching
}

func NewBusinessController(db *gorm.DB, cache *redis.Client) *BusinessController {
	return &BusinessController{DB: db, Cache: cache}
}

// GetAllBusinesses lists directory entries. Optional query params `type`,
// `verified`, `minRating` and `search` combine with AND semantics; results are
// ordered by rating descending. The unfiltered listing is served through the
// cache.
func (bc *BusinessController) GetAllBusinesses(c *fiber.Ctx) error {
	businessType := c.Query("type")
	verified := c.Query("verified")
	minRating := c.Query("minRating")
	search := c.Query("search")

	unfiltered := businessType == "" && verified == "" && minRating == "" && search == ""
	if unfiltered {
		if cached, ok := bc.cachedListing(c.Context()); ok {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.SendString(cached)
		}
	}

	query := bc.DB.Model(&models.Business{})

	if businessType != "" {
		if !models.ValidBusinessType(models.BusinessType(businessType)) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid business type",
			})
		}
		query = query.Where("type = ?", businessType)
	}
	if verified != "" {
		query = query.Where("is_verified = ?", verified == "true")
	}
	if minRating != "" {
		rating, err := strconv.ParseFloat(minRating, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "minRating must be a number",
			})
		}
		query = query.Where("rating >= ?", rating)
	}
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(address) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var businesses []models.Business
	if err := query.Order("rating desc").Find(&businesses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch businesses",
		})
	}

	if unfiltered {
		bc.storeListing(c.Context(), businesses)
	}

	return c.JSON(fiber.Map{"data": businesses})
}

// GetBusiness returns one directory entry.
func (bc *BusinessController) GetBusiness(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid business ID",
		})
	}

	var business models.Business
	if err := bc.DB.First(&business, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Business not found",
		})
	}

	return c.JSON(fiber.Map{"data": business})
}

// CreateBusiness adds a directory entry.
func (bc *BusinessController) CreateBusiness(c *fiber.Ctx) error {
	business := new(models.Business)
	if err := c.BodyParser(business); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if business.Name == "" || business.Type == "" || business.Description == "" || business.Address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Required fields: name, type, description, address",
		})
	}
	if !models.ValidBusinessType(business.Type) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid business type",
		})
	}

	if err := bc.DB.Create(business).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create business",
		})
	}

	bc.invalidateListing(c.Context())

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Business created successfully",
		"data":    business,
	})
}

// UpdateBusiness partially updates a directory entry.
func (bc *BusinessController) UpdateBusiness(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid business ID",
		})
	}

	var business models.Business
	if err := bc.DB.First(&business, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Business not found",
		})
	}

	var input map[string]interface{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	allowed := map[string]bool{
		"name": true, "type": true, "description": true, "address": true,
		"phone": true, "rating": true, "image_url": true, "is_verified": true,
	}
	updates := map[string]interface{}{}
	for key, value := range input {
		if allowed[key] {
			updates[key] = value
		}
	}

	if t, ok := updates["type"].(string); ok && !models.ValidBusinessType(models.BusinessType(t)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid business type",
		})
	}

	if len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No fields to update",
		})
	}

	if err := bc.DB.Model(&business).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update business",
		})
	}

	bc.invalidateListing(c.Context())

	return c.JSON(fiber.Map{
		"message": "Business updated successfully",
		"data":    business,
	})
}

// DeleteBusiness removes a directory entry.
func (bc *BusinessController) DeleteBusiness(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid business ID",
		})
	}

	var business models.Business
	if err := bc.DB.First(&business, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Business not found",
		})
	}

	if err := bc.DB.Delete(&business).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete business",
		})
	}

	bc.invalidateListing(c.Context())

	return c.JSON(fiber.Map{
		"message": "Business deleted successfully",
		"data":    business,
	})
}

func (bc *BusinessController) cachedListing(ctx context.Context) (string, bool) {
	if bc.Cache == nil {
		return "", false
	}
	cached, err := bc.Cache.Get(ctx, businessCacheKey).Result()
	if err != nil {
		return "", false
	}
	return cached, true
}

func (bc *BusinessController) storeListing(ctx context.Context, businesses []models.Business) {
	if bc.Cache == nil {
		return
	}
	payload, err := json.Marshal(fiber.Map{"data": businesses})
	if err != nil {
		return
	}
	if err := bc.Cache.Set(ctx, businessCacheKey, payload, businessCacheTTL).Err(); err != nil {
		log.Printf("Failed to cache business listing: %v", err)
	}
}

func (bc *BusinessController) invalidateListing(ctx context.Context) {
	if bc.Cache == nil {
		return
	}
	if err := bc.Cache.Del(ctx, businessCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate business listing cache: %v", err)
	}
}
