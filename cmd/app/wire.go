//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/travel-planner/internal/bootstrap"
	"github.com/yanqian/travel-planner/internal/domain/culture"
	"github.com/yanqian/travel-planner/internal/domain/eco"
	"github.com/yanqian/travel-planner/internal/domain/essentials"
	"github.com/yanqian/travel-planner/internal/domain/food"
	"github.com/yanqian/travel-planner/internal/domain/itinerary"
	"github.com/yanqian/travel-planner/internal/domain/travelinfo"
	"github.com/yanqian/travel-planner/internal/infra/config"
	httpiface "github.com/yanqian/travel-planner/internal/interface/http"
	"github.com/yanqian/travel-planner/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideItineraryConfig,
		provideCultureConfig,
		provideChatClient,
		provideCatalog,
		provideSightRepository,
		provideHotelRepository,
		provideTrendStore,
		itinerary.NewService,
		travelinfo.NewService,
		culture.NewService,
		food.NewService,
		eco.NewService,
		essentials.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
