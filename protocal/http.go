package protocal

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"native-ai-bridge/configs"
	"native-ai-bridge/internal/adapters/input/channel"
	httpAdapter "native-ai-bridge/internal/adapters/input/http"
	"native-ai-bridge/internal/adapters/input/natsrpc"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	conf := configs.GetViper()
	setupLogger(conf.Log)
	logrus.Info(conf.App.Env)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))

	// Wire up the hexagonal architecture layers
	// Output adapter (model runtime)
	runtime, err := newModelRuntime(conf)
	if err != nil {
		return err
	}
	// Application services (use cases)
	gate, bridge, err := newApplication(conf, runtime)
	if err != nil {
		return err
	}
	status := gate.CheckAvailability(context.Background())
	logrus.Infof("Model runtime %s: available=%t reason=%s", runtime.Name(), status.Available, status.Reason)
	// Input adapters (channel dispatcher, HTTP handler, NATS subscriber)
	dispatcher := channel.NewDispatcher(conf.Bridge.Channel, gate, bridge)
	replyTimeout := time.Duration(conf.Bridge.Timeout) * time.Second
	hdl := httpAdapter.New(runtime.Name(), replyTimeout, dispatcher)

	var nc *nats.Conn
	var subscriber *natsrpc.Subscriber
	if conf.NATS.Enabled {
		nc, err = connectNATS(conf.NATS)
		if err != nil {
			return err
		}
		subscriber = natsrpc.NewSubscriber(nc, conf.NATS.Subject, dispatcher)
		if err := subscriber.Start(); err != nil {
			nc.Close()
			return err
		}
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			if subscriber != nil {
				ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
				if err := subscriber.Stop(ctx); err != nil {
					log.Println("Error when draining NATS subscription: ", err)
				}
				cancel()
				nc.Close()
			}
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	hdl.Register(app)

	logrus.Println("Listerning on port: ", conf.App.Port)
	return app.Listen(":" + conf.App.Port)
}
