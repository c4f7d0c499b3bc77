// Package webapp provides the Deezer Explorer web front-end as an embeddable library.
//
// # Overview
//
// Deezer Explorer is a small server-side-rendered site on top of the public
// Deezer catalog API. Every route proxies one or two upstream GET calls and
// renders the result as HTML; upstream failures of any kind degrade to an
// empty page state rather than an error.
//
// # Basic Usage
//
// Create an application with explicit configuration:
//
//	cfg := config.Default()
//	cfg.Server.Port = 8080
//
//	app, err := webapp.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//
// # Using with an Existing HTTP Server
//
// Mount the site under a path of your own server:
//
//	app, err := webapp.NewFromFile("configs/config.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	http.Handle("/music/", http.StripPrefix("/music", app.Handler()))
//	http.ListenAndServe(":8080", nil)
package webapp
