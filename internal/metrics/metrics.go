// Package metrics содержит счетчики prometheus для операций с пользователями.
// Регистрация выполняется на переданном вызывающей стороной Registerer,
// публикация /metrics остается за внешним сервисом.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics объединяет счетчики операций регистрации и проверки учетных данных.
type Metrics struct {
	UsersCreated     prometheus.Counter
	CredentialChecks *prometheus.CounterVec
}

// New создает и регистрирует счетчики на переданном Registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		UsersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "users_created_total",
			Help: "Total number of successfully created user accounts.",
		}),
		CredentialChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "credential_checks_total",
			Help: "Total number of credential verifications by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.UsersCreated, m.CredentialChecks)
	return m
}
