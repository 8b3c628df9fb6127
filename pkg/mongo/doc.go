// Package mongo connects mongo-driver/v2 clients with retries.
//
//	db, err := mongo.ConnectDatabase(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer db.Client().Disconnect(context.Background())
//
//	store := domainsettings.NewMongoStore(db, cfg.Collection)
package mongo
