package controllers

import (
	"errors"
	"fmt"

	"storefront-app/config"
	"storefront-app/controllers/idgen"
	"storefront-app/database"
	"storefront-app/models"
	"storefront-app/services"
	"storefront-app/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(DB *gorm.DB) *OrderController {
	return &OrderController{DB: DB}
}

var orderInput struct {
	CustomerName  string  `json:"customer_name" validate:"required,min=2"`
	CustomerEmail string  `json:"customer_email" validate:"required,email"`
	Address       string  `json:"address"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
	ShippingCost  float64 `json:"shipping_cost" validate:"gte=0"`
	Items         []struct {
		ProductID uint `json:"product_id" validate:"required"`
		Quantity  int  `json:"quantity" validate:"required,gt=0"`
	} `json:"items" validate:"required,min=1,dive"`
}

// CreateOrder is a storefront endpoint: it resolves the tenant from the
// query (guest routes carry no token), prices the items server-side and
// honors the store's feature toggles for COD and shipping.
func (c *OrderController) CreateOrder(ctx *fiber.Ctx) error {
	tenant := ctx.Query("tenant", config.DBTenant)
	if !database.IsValidDBName(tenant) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tenant"})
	}

	db, err := database.GetTenantDB(tenant)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to connect to database"})
	}

	if err := ctx.BodyParser(&orderInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(orderInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	settings, err := services.Settings.Get(tenant, func() (*models.Setting, error) {
		var s models.Setting
		if err := db.First(&s).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return &s, nil
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if orderInput.PaymentMethod == models.PaymentMethodCOD && (settings == nil || !settings.CodEnabled) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cash on delivery is not available"})
	}

	shippingCost := orderInput.ShippingCost
	if settings == nil || !settings.ShippingEnabled {
		shippingCost = 0
	}

	trackInventory := settings != nil && settings.TrackInventory

	order := models.OrderHeader{
		OrderNo:       types.SnowflakeID(idgen.GenerateID()),
		CustomerName:  orderInput.CustomerName,
		CustomerEmail: orderInput.CustomerEmail,
		Address:       orderInput.Address,
		Status:        models.OrderStatusPending,
		PaymentMethod: orderInput.PaymentMethod,
		ShippingCost:  shippingCost,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		total := shippingCost
		for _, item := range orderInput.Items {
			var product models.Product
			if err := tx.Where("id = ? AND is_active = ?", item.ProductID, true).First(&product).Error; err != nil {
				return fmt.Errorf("product %d not found", item.ProductID)
			}

			if trackInventory {
				if product.Quantity < item.Quantity {
					return fmt.Errorf("insufficient stock for %s", product.SKU)
				}
				if err := tx.Model(&product).Update("quantity", product.Quantity-item.Quantity).Error; err != nil {
					return err
				}
			}

			subtotal := product.Price * float64(item.Quantity)
			total += subtotal
			order.Items = append(order.Items, models.OrderItem{
				ProductID: product.ID,
				SKU:       product.SKU,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  item.Quantity,
				Subtotal:  subtotal,
			})
		}

		order.Total = total
		return tx.Create(&order).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Staff see new orders in the notification bell; UserID 0 is the
	// broadcast convention.
	services.Notify(db, &models.Notification{
		Title: "New order received",
		Body:  fmt.Sprintf("Order %d from %s", int64(order.OrderNo), order.CustomerName),
		Link:  fmt.Sprintf("/orders/%d", order.ID),
	})

	go func() {
		body := fmt.Sprintf("<p>Hi %s,</p><p>We received your order <b>%d</b>. Total: %.2f</p>",
			order.CustomerName, int64(order.OrderNo), order.Total)
		if err := services.SendMail([]string{order.CustomerEmail}, "Order confirmation", body); err != nil {
			log.Warn().Err(err).Msg("Order confirmation mail failed")
		}
	}()

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Order created successfully", "data": order})
}

func (c *OrderController) GetAllOrders(ctx *fiber.Ctx) error {
	var orders []models.OrderHeader
	query := c.DB.Preload("Items").Order("created_at desc")

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&orders).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": orders})
}

func (c *OrderController) GetOrderByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var order models.OrderHeader
	if err := c.DB.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": order})
}

var allowedTransitions = map[string][]string{
	models.OrderStatusPending: {models.OrderStatusPaid, models.OrderStatusCancelled},
	models.OrderStatusPaid:    {models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusShipped: {models.OrderStatusCompleted},
}

func (c *OrderController) UpdateOrderStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var order models.OrderHeader
	if err := c.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	allowed := false
	for _, next := range allowedTransitions[order.Status] {
		if next == input.Status {
			allowed = true
			break
		}
	}
	if !allowed {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Cannot change status from %s to %s", order.Status, input.Status),
		})
	}

	order.Status = input.Status
	order.UpdatedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Save(&order).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Order status updated", "data": order})
}

func (c *OrderController) ExportExcel(ctx *fiber.Ctx) error {
	var orders []models.OrderHeader
	if err := c.DB.Preload("Items").Order("created_at desc").Find(&orders).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Order No")
	f.SetCellValue(sheet, "B1", "Customer")
	f.SetCellValue(sheet, "C1", "Email")
	f.SetCellValue(sheet, "D1", "Status")
	f.SetCellValue(sheet, "E1", "Payment")
	f.SetCellValue(sheet, "F1", "Items")
	f.SetCellValue(sheet, "G1", "Total")

	for i, o := range orders {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), int64(o.OrderNo))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), o.CustomerName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), o.CustomerEmail)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), o.Status)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), o.PaymentMethod)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), len(o.Items))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", i+2), o.Total)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="orders.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
