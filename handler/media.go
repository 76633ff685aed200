package handler

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"kost_market/config"
	"kost_market/constants"
	"kost_market/database"
	"kost_market/helper"
	"kost_market/model"
	"kost_market/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

// GenerateSignature signs upload parameters so the browser can upload to
// cloudinary directly without the secret ever leaving the server.
func GenerateSignature(c *fiber.Ctx) error {
	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 || !helper.IsOwner(user) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, nil)
	}

	type SigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	timestamp := time.Now().Unix()

	paramMap := map[string]string{
		"timestamp": fmt.Sprintf("%d", timestamp),
	}
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(config.Config("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    config.Config("CLOUDINARY_API_KEY"),
		"cloudName": config.Config("CLOUDINARY_CLOUD_NAME"),
	})
}

// UploadPropertyPhotos accepts multipart files, pushes them to cloudinary
// and appends the resulting URLs to the property's photo list.
func UploadPropertyPhotos(c *fiber.Ctx) error {
	db := database.DB

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 || !helper.IsOwner(user) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, nil)
	}

	propertyId, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var property model.Property
	if err := db.First(&property, propertyId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PROPERTY_NOT_FOUND, err)
	}
	if property.OwnerId != user.ID && !helper.IsAdmin(user) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, nil)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	files := form.File["photos"]
	if len(files) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, fmt.Errorf("no photos attached"))
	}

	cld, ok := c.Locals("cld").(*cloudinary.Cloudinary)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, fmt.Errorf("cloudinary client missing"))
	}

	var photos []string
	if len(property.Photos) > 0 {
		if err := json.Unmarshal(property.Photos, &photos); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	for i, file := range files {
		reader, err := file.Open()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		result, err := cld.Upload.Upload(c.Context(), reader, uploader.UploadParams{
			Folder:       "kost/properties",
			PublicID:     fmt.Sprintf("property_%d_%d_%d", property.ID, time.Now().Unix(), i),
			ResourceType: "image",
		})
		reader.Close()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload failed", err)
		}

		photos = append(photos, result.SecureURL)
	}

	property.Photos = utils.ToJSONList(photos)
	if err := db.Save(&property).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"photos": photos})
}

// UploadAvatar replaces the requesting user's profile picture.
func UploadAvatar(c *fiber.Ctx) error {
	db := database.DB

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	cld, ok := c.Locals("cld").(*cloudinary.Cloudinary)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, fmt.Errorf("cloudinary client missing"))
	}

	reader, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	defer reader.Close()

	result, err := cld.Upload.Upload(context.Background(), reader, uploader.UploadParams{
		Folder:       "kost/avatars",
		PublicID:     fmt.Sprintf("user_%d", user.ID),
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload failed", err)
	}

	err = db.Model(&model.User{}).
		Where("id = ?", user.ID).
		Update("avatar_url", result.SecureURL).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"avatarUrl": result.SecureURL})
}
