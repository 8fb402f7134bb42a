package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	summariesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recap_summaries_total",
		Help: "Total number of successfully summarized videos.",
	})

	questionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recap_questions_total",
		Help: "Total number of successfully answered follow-up questions.",
	})

	promptLimitRejectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recap_prompt_limit_rejections_total",
		Help: "Total number of questions rejected because the session prompt limit was reached.",
	})
)
