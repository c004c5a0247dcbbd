package cmd

import (
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/redislock"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services/pricing"
	"logistics/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	locker     ports.ParcelLocker
	engine     pricing.PricingEngine
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, redisClient *redis.Client) (CompositionRoot, error) {
	engine, err := pricing.NewPricingEngine(pricing.DefaultRules())
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		locker:     redislock.NewRedisParcelLocker(redisClient),
		engine:     engine,
	}, nil
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateParcelAttributesCommandHandler() commands.UpdateParcelAttributesCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelAttributesCommandHandler(f, c.locker)
}

func (c *CompositionRoot) CreateAddSpecialMarkerCommandHandler() commands.AddSpecialMarkerCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddSpecialMarkerCommandHandler(f, c.locker)
}

func (c *CompositionRoot) CreateChangeParcelStatusCommandHandler() commands.ChangeParcelStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeParcelStatusCommandHandler(f, c.locker)
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateFlagDelayedParcelsCommandHandler() commands.FlagDelayedParcelsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewFlagDelayedParcelsCommandHandler(f, c.locker)
}

func (c *CompositionRoot) CreateGetParcelsQueryHandler() queries.GetParcelsQueryHandler {
	return queries.NewGetParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCurrentStatusQueryHandler() queries.GetCurrentStatusQueryHandler {
	return queries.NewGetCurrentStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackingHistoryQueryHandler() queries.GetTrackingHistoryQueryHandler {
	return queries.NewGetTrackingHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCalculateCostQueryHandler() queries.CalculateCostQueryHandler {
	return queries.NewCalculateCostQueryHandler(c.gormDB, c.engine)
}

func (c *CompositionRoot) CreateGetMonthlyReportQueryHandler() queries.GetMonthlyReportQueryHandler {
	return queries.NewGetMonthlyReportQueryHandler(c.gormDB, c.engine)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
