package di

import (
	"gorm.io/gorm"

	"loop/internal/config"
	"loop/internal/dbmongo"
	"loop/internal/events"
	"loop/internal/group"
	"loop/internal/httpapi"
	"loop/internal/media"
	"loop/internal/membership"
	"loop/internal/user"
)

type Application struct {
	Config *config.Config
	DB     *gorm.DB
	Mongo  *dbmongo.MongoClient
	Bus    *events.Bus
	Groups group.Service
	Roster membership.Service
	Media  media.Service
	Users  user.Service
	API    *httpapi.Server
}

// Services bundles the three core services. The registry needs the roster
// and the catalog, while both of them need pieces built from the registry's
// repository, so the cycle is broken inside one provider.
type Services struct {
	Groups group.Service
	Roster membership.Service
	Media  media.Service
	Users  user.Service
}

func ProvideServices(db *gorm.DB, store *dbmongo.ObjectStore, bus *events.Bus, cfg *config.Config) *Services {
	groupRepo := group.NewGroupRepository(db)
	roster := membership.NewMembershipService(membership.NewMembershipRepository(db), groupRepo, bus)
	mediaSvc := media.NewMediaService(media.NewMediaRepository(db), store, roster, bus, cfg)
	groups := group.NewGroupService(groupRepo, roster, mediaSvc, bus)
	users := user.NewUserService(user.NewUserRepository(db))
	return &Services{Groups: groups, Roster: roster, Media: mediaSvc, Users: users}
}
