package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/x-xyz/dasgo/base/config"
	"github.com/x-xyz/dasgo/base/ctx"
	"github.com/x-xyz/dasgo/base/env"
	"github.com/x-xyz/dasgo/base/log"
	bValidator "github.com/x-xyz/dasgo/base/validator"
	mmiddleware "github.com/x-xyz/dasgo/middleware"
	das_delivery "github.com/x-xyz/dasgo/stores/das/delivery/http"
	das_usecase "github.com/x-xyz/dasgo/stores/das/usecase"
	hc_delivery "github.com/x-xyz/dasgo/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/dasgo/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/dasgo/stores/healthcheck/usecase"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/x-xyz/dasgo/app/api/docs"
)

func init() {
	if err := config.Init(viper.GetViper(), env.ConfigFile(config.DefaultFile)); err != nil {
		panic(err)
	}

	if err := log.Configure(log.Options{
		Debug:   viper.GetBool(`debug`),
		Service: viper.GetString("app_name"),
	}); err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			dasgo API
//	@version		1.0
//	@description	Resolution of .bit accounts through the das indexer.
func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.RequestID())
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	validate, err := bValidator.New()
	if err != nil {
		log.Log().WithField("err", err).Panic("bValidator.New failed")
	}
	e.Validator = bValidator.NewCustomValidator(validate)

	context := ctx.Background()

	dasCfg := config.LoadDas(viper.GetViper())
	context.WithFields(log.Fields{
		"network": dasCfg.Network,
		"url":     dasCfg.Url,
	}).Info("init das")
	das, err := das_usecase.Open(context, &das_usecase.UsecaseCfg{
		Network:        dasCfg.Network,
		Url:            dasCfg.Url,
		HttpClient:     http.Client{Timeout: dasCfg.Timeout},
		Timeout:        dasCfg.Timeout,
		AvatarResolver: dasCfg.AvatarResolver,
		IdenticonUrl:   dasCfg.IdenticonUrl,
	}, dasCfg.ProbeTimeout)
	if err != nil {
		context.WithField("err", err).Panic("das_usecase.Open failed")
	}
	context.WithFields(log.Fields{
		"network": das.Network(),
		"url":     das.Url(),
	}).Info("das ready")

	hcRepo := hc_repo.New(das.Resolver(), 0)
	hc := hc_usecase.New(hcRepo)

	hc_delivery.New(e, hc, das.Network())
	das_delivery.New(e, das)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
