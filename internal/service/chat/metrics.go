package chat

import "github.com/prometheus/client_golang/prometheus"

var chatMessages = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "nexmart_chat_messages_total",
		Help: "Chat messages stored, labelled by sender.",
	},
	[]string{"sender"},
)

var publishFailures = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "nexmart_chat_publish_failures_total",
		Help: "Assistant messages that could not be pushed over websocket.",
	},
)

func init() {
	prometheus.MustRegister(chatMessages, publishFailures)
}

func incMessage(sender string) {
	chatMessages.WithLabelValues(sender).Inc()
}

func incPublishFailure() {
	publishFailures.Inc()
}
