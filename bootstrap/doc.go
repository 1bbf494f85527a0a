// Package bootstrap runs an ssemock binary through a uniform lifecycle:
// config defaults and validation, logger initialization, component startup,
// a finite task, and graceful shutdown.
//
// Any config struct embedding config.ServiceConfig satisfies Config:
//
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil {
//	    return err
//	}
//	app.RegisterComponent(eventsource.NewComponent(nil))
//	return app.RunTask(ctx, func(ctx context.Context) error {
//	    return play(ctx)
//	})
package bootstrap
