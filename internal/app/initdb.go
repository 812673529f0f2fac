package app

import (
	"time"

	"github.com/openretail/storeapi/internal/domain"
	"github.com/openretail/storeapi/pkg/common"
	"go.uber.org/zap"
)

// checkDemoData initializes demo catalog and customer records, skipping any
// that already exist.
func (a *Application) checkDemoData() {
	defaultProducts := []domain.Product{
		{Name: "demo-widget-basic", Price: 9.99},
		{Name: "demo-widget-pro", Price: 24.5},
		{Name: "demo-service-annual", Price: 199.0},
	}

	for _, p := range defaultProducts {
		var count int64
		a.gormDB.Model(&domain.Product{}).Where("name = ?", p.Name).Count(&count)
		if count == 0 {
			p.ID = common.UUID()
			p.CreatedAt = time.Now()
			p.UpdatedAt = time.Now()
			if err := a.gormDB.Create(&p).Error; err != nil {
				zap.L().Error("failed to create default product", zap.String("name", p.Name), zap.Error(err))
			} else {
				zap.L().Info("initialized default product", zap.String("name", p.Name))
			}
		}
	}

	defaultCustomers := []domain.Customer{
		{FirstName: "Demo", LastName: "Customer", Email: "demo@example.com"},
	}

	for _, c := range defaultCustomers {
		var count int64
		a.gormDB.Model(&domain.Customer{}).Where("email = ?", c.Email).Count(&count)
		if count == 0 {
			c.ID = common.UUID()
			c.CreatedAt = time.Now()
			c.UpdatedAt = time.Now()
			if err := a.gormDB.Create(&c).Error; err != nil {
				zap.L().Error("failed to create default customer", zap.String("email", c.Email), zap.Error(err))
			} else {
				zap.L().Info("initialized default customer", zap.String("email", c.Email))
			}
		}
	}
}
