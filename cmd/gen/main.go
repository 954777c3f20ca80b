package main

import (
	"zenmap/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ProfileModel{},
		model.CredentialModel{},
		model.CurrentLocationModel{},
		model.LocationHistoryModel{},
		model.FriendRequestModel{},
		model.ShareRuleModel{},
		model.UserSettingsModel{},
		model.FavoritePlaceModel{},
		model.BumpEventModel{},
		model.LocationReactionModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
