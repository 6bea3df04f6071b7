package controllers

import (
	"errors"
	"fmt"

	"storefront-app/models"
	"storefront-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(DB *gorm.DB) *ProductController {
	return &ProductController{DB: DB}
}

var productInput struct {
	ID          uint    `json:"id"`
	SKU         string  `json:"sku" validate:"required,min=3"`
	Name        string  `json:"name" validate:"required,min=3"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gte=0"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	IsActive    *bool   `json:"is_active"`
}

func (c *ProductController) CreateProduct(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&productInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(productInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slug := utils.UniqueSlug(productInput.Name, func(s string) bool {
		var count int64
		c.DB.Model(&models.Product{}).Where("slug = ?", s).Count(&count)
		return count > 0
	})

	isActive := true
	if productInput.IsActive != nil {
		isActive = *productInput.IsActive
	}

	product := models.Product{
		SKU:         productInput.SKU,
		Name:        productInput.Name,
		Slug:        slug,
		Description: productInput.Description,
		Price:       productInput.Price,
		Category:    productInput.Category,
		ImageURL:    productInput.ImageURL,
		Quantity:    productInput.Quantity,
		IsActive:    isActive,
		CreatedBy:   int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&product).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Product created successfully", "data": product})
}

func (c *ProductController) GetAllProducts(ctx *fiber.Ctx) error {
	var products []models.Product
	if err := c.DB.Order("name asc").Find(&products).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": products})
}

func (c *ProductController) GetProductByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.Product
	if err := c.DB.First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Product found", "data": result})
}

func (c *ProductController) UpdateProduct(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var product models.Product
	if err := c.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := ctx.BodyParser(&productInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(productInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// The slug only changes when the name does, and stays unique.
	if productInput.Name != product.Name {
		product.Slug = utils.UniqueSlug(productInput.Name, func(s string) bool {
			var count int64
			c.DB.Model(&models.Product{}).Where("slug = ? AND id <> ?", s, product.ID).Count(&count)
			return count > 0
		})
	}

	product.SKU = productInput.SKU
	product.Name = productInput.Name
	product.Description = productInput.Description
	product.Price = productInput.Price
	product.Category = productInput.Category
	product.ImageURL = productInput.ImageURL
	product.Quantity = productInput.Quantity
	if productInput.IsActive != nil {
		product.IsActive = *productInput.IsActive
	}
	product.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&product).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Product updated successfully", "data": product})
}

func (c *ProductController) DeleteProduct(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var product models.Product
	if err := c.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&product).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Product deleted successfully"})
}

// ExportExcel streams the product list as an xlsx download.
func (c *ProductController) ExportExcel(ctx *fiber.Ctx) error {
	var products []models.Product
	if err := c.DB.Order("sku asc").Find(&products).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "SKU")
	f.SetCellValue(sheet, "B1", "Name")
	f.SetCellValue(sheet, "C1", "Category")
	f.SetCellValue(sheet, "D1", "Price")
	f.SetCellValue(sheet, "E1", "Quantity")
	f.SetCellValue(sheet, "F1", "Active")

	for i, p := range products {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), p.SKU)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), p.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), p.Category)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), p.Price)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), p.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), p.IsActive)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="products.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}

// ImportExcel upserts products from an uploaded xlsx file. Columns follow
// the export layout: SKU, Name, Category, Price, Quantity.
func (c *ProductController) ImportExcel(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "File is required"})
	}

	fileContent, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Failed to open file"})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Failed to read Excel file"})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "No sheets found in Excel file"})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to read rows"})
	}

	userID := int(ctx.Locals("userID").(float64))
	imported := 0
	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			// skip header and short rows
			continue
		}

		sku, name := row[0], row[1]
		if sku == "" || name == "" {
			continue
		}

		product := models.Product{}
		err := c.DB.Where("sku = ?", sku).First(&product).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
		}

		product.SKU = sku
		product.Name = name
		if len(row) > 2 {
			product.Category = row[2]
		}
		if len(row) > 3 {
			fmt.Sscanf(row[3], "%f", &product.Price)
		}
		if len(row) > 4 {
			fmt.Sscanf(row[4], "%d", &product.Quantity)
		}

		if product.ID == 0 {
			product.Slug = utils.UniqueSlug(name, func(s string) bool {
				var count int64
				c.DB.Model(&models.Product{}).Where("slug = ?", s).Count(&count)
				return count > 0
			})
			product.IsActive = true
			product.CreatedBy = userID
		} else {
			product.UpdatedBy = userID
		}

		if err := c.DB.Save(&product).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
		}
		imported++
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": fmt.Sprintf("%d products imported", imported)})
}
