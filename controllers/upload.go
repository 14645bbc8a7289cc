package controllers

import (
	"context"
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Product image upload/delete against Cloudinary. Without CLOUDINARY_URL the
// admin can still paste external image links; these endpoints just refuse.

// POST /admin/upload  (multipart field "image")
func UploadImage(c *fiber.Ctx) error {
	cloudURL := os.Getenv("CLOUDINARY_URL")
	if cloudURL == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "image storage not configured"})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "image file is required"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot read image file"})
	}
	defer file.Close()

	cld, err := cloudinary.NewFromURL(cloudURL)
	if err != nil {
		log.Println("cloudinary init:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "image storage error"})
	}

	ctx := context.Background()
	result, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: "products/" + uuid.NewString(),
	})
	if err != nil {
		log.Println("upload error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "upload failed"})
	}

	return c.JSON(fiber.Map{
		"url":      result.SecureURL,
		"publicId": result.PublicID,
	})
}

// DELETE /admin/upload/*  (path after the prefix is the public id)
func DeleteImage(c *fiber.Ctx) error {
	cloudURL := os.Getenv("CLOUDINARY_URL")
	if cloudURL == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "image storage not configured"})
	}

	publicID := c.Params("*")
	if publicID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "publicId is required"})
	}

	cld, err := cloudinary.NewFromURL(cloudURL)
	if err != nil {
		log.Println("cloudinary init:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "image storage error"})
	}

	if _, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: publicID}); err != nil {
		log.Println("cloudinary destroy error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "delete failed"})
	}

	return c.JSON(fiber.Map{"message": "Image deleted", "publicId": publicID})
}
