package main

import (
	"medisupply/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.CompanyModel{},
		model.AdminModel{},
		model.MedicineModel{},
		model.CartEntryModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.ActivityModel{},
		model.QuoteRequestModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
