package chatbot

import "github.com/prometheus/client_golang/prometheus"

var resolvedIntents = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "nexmart_chatbot_resolved_intents_total",
		Help: "Utterances resolved, labelled by the rule that matched.",
	},
	[]string{"intent"},
)

func init() {
	prometheus.MustRegister(resolvedIntents)
}

func incIntent(name string) {
	resolvedIntents.WithLabelValues(name).Inc()
}
