package app

import (
	"github.com/humanbelnik/kinomatch/core/internal/config"
	http_init "github.com/humanbelnik/kinomatch/core/internal/delivery/http/init"
	http_prefs "github.com/humanbelnik/kinomatch/core/internal/delivery/http/prefs"
	http_queue "github.com/humanbelnik/kinomatch/core/internal/delivery/http/queue"
	http_room "github.com/humanbelnik/kinomatch/core/internal/delivery/http/room"
	ws_room "github.com/humanbelnik/kinomatch/core/internal/delivery/ws/room"
	infra_catalog "github.com/humanbelnik/kinomatch/core/internal/infra/catalog"
	infra_pg_init "github.com/humanbelnik/kinomatch/core/internal/infra/postgres/init"
	infra_postgres_prefs "github.com/humanbelnik/kinomatch/core/internal/infra/postgres/prefs"
	infra_postgres_room "github.com/humanbelnik/kinomatch/core/internal/infra/postgres/room"
	infra_postgres_swipe "github.com/humanbelnik/kinomatch/core/internal/infra/postgres/swipe"
	infra_redis_init "github.com/humanbelnik/kinomatch/core/internal/infra/redis/init"
	infra_redis_poolcache "github.com/humanbelnik/kinomatch/core/internal/infra/redis/poolcache"
	usecase_pool "github.com/humanbelnik/kinomatch/core/internal/usecase/pool"
	usecase_queue "github.com/humanbelnik/kinomatch/core/internal/usecase/queue"
	usecase_room "github.com/humanbelnik/kinomatch/core/internal/usecase/room"
	usecase_swipe "github.com/humanbelnik/kinomatch/core/internal/usecase/swipe"
)

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
	catalog := infra_catalog.MustEstablishConnection(cfg.Catalog)

	roomRepository := infra_postgres_room.New(pgConn)
	swipeRepository := infra_postgres_swipe.New(pgConn)
	prefsRepository := infra_postgres_prefs.New(pgConn)
	poolCache := infra_redis_poolcache.New(redisConn, "pool_snapshot")

	roomUC := usecase_room.New(roomRepository, prefsRepository, cfg.Rooms.CleanupPeriod)
	poolUC := usecase_pool.New(catalog, poolCache, cfg.Rooms.PoolTTL)
	queueUC := usecase_queue.New(roomUC, swipeRepository, prefsRepository, catalog, poolUC)
	swipeUC := usecase_swipe.New(swipeRepository, roomRepository, prefsRepository, catalog, cfg.Rooms.MatchTTL)

	hub := ws_room.NewHub(roomUC, swipeUC)
	go hub.Run()

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_room.New(roomUC))
	controllerPool.Add(http_queue.New(queueUC))
	controllerPool.Add(http_prefs.New(prefsRepository))
	controllerPool.Add(ws_room.NewController(hub))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
