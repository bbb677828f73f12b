package protocal

import (
	"native-ai-bridge/configs"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

// connectNATS opens the connection used by the NATS channel transport
func connectNATS(cfg configs.NATS) (*nats.Conn, error) {
	name := cfg.Name
	if name == "" {
		name = "native-ai-bridge"
	}
	return nats.Connect(cfg.URL,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logrus.Warnf("NATS disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logrus.Infof("NATS reconnected to %s", nc.ConnectedUrl())
		}),
	)
}
