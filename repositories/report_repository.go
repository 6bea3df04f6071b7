package repositories

import (
	"storefront-app/models"

	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db}
}

type OrderStatusCount struct {
	Status string `gorm:"column:status" json:"status"`
	Total  int64  `gorm:"column:total" json:"total"`
}

type DailyRevenue struct {
	Day     string  `gorm:"column:day" json:"day"`
	Orders  int64   `gorm:"column:orders" json:"orders"`
	Revenue float64 `gorm:"column:revenue" json:"revenue"`
}

func (r *ReportRepository) GetOrderStatusCounts() ([]OrderStatusCount, error) {
	var results []OrderStatusCount

	query := `
	SELECT status, COUNT(*) AS total
	FROM order_headers
	WHERE deleted_at IS NULL
	GROUP BY status
	ORDER BY status`

	if err := r.db.Raw(query).Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetDailyRevenue aggregates paid and later orders over the last N days.
func (r *ReportRepository) GetDailyRevenue(days int) ([]DailyRevenue, error) {
	var results []DailyRevenue

	query := `
	SELECT
		TO_CHAR(created_at, 'YYYY-MM-DD') AS day,
		COUNT(*) AS orders,
		COALESCE(SUM(total), 0) AS revenue
	FROM order_headers
	WHERE deleted_at IS NULL
		AND status IN ('paid', 'shipped', 'completed')
		AND created_at >= NOW() - (? * INTERVAL '1 day')
	GROUP BY TO_CHAR(created_at, 'YYYY-MM-DD')
	ORDER BY day`

	if err := r.db.Raw(query, days).Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ReportRepository) GetLowStockProducts(threshold int) ([]models.Product, error) {
	var products []models.Product

	err := r.db.
		Where("is_active = ? AND quantity <= ?", true, threshold).
		Order("quantity asc").
		Limit(20).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ReportRepository) CountUnreadMessages() (int64, error) {
	var total int64
	err := r.db.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&total).Error
	return total, err
}

func (r *ReportRepository) CountPublishedPosts() (int64, error) {
	var total int64
	err := r.db.Model(&models.BlogPost{}).Where("is_published = ?", true).Count(&total).Error
	return total, err
}
