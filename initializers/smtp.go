package initializers

import (
	log "github.com/sirupsen/logrus"
	"jobboard-backend/config"
	"jobboard-backend/lib/smtp"
)

func InitSmtp() {
	if config.Conf.Smtp.Host == "" {
		log.Warn("SMTP не настроен, уведомления об откликах отправляться не будут")
		return
	}
	err := smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, config.Conf.Smtp.From, *config.Conf.Smtp.TLSEnabled)
	if err != nil {
		panic(err.Error())
	}
}
