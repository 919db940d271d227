package main

import (
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/mgo.v2"

	"github.com/intervention-engine/cvriskservice/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cvriskd",
		Short: "Cardiovascular risk score calculation service",
	}
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig()
			if err != nil {
				return err
			}
			log := newLogger(cfg)

			session, err := mgo.Dial(cfg.MongoURL)
			if err != nil {
				return err
			}
			defer session.Close()
			db := session.DB(cfg.DatabaseName)
			log.WithFields(logrus.Fields{
				"mongo":    cfg.MongoURL,
				"database": cfg.DatabaseName,
			}).Info("connected to database")

			e := echo.New()
			e.HideBanner = true
			e.Use(echomw.Recover())
			server.RegisterRoutes(e, server.NewRiskService(db, log))

			log.WithField("port", cfg.Port).Info("starting cvriskd")
			return e.Start(":" + cfg.Port)
		},
	}
}

func newLogger(cfg *server.Config) *logrus.Logger {
	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}
