package fakes

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o ./fake_model_db.go ../db ModelDB
//counterfeiter:generate -o ./fake_metric_db.go ../db MetricDB
//counterfeiter:generate -o ./fake_alert_db.go ../db AlertDB
//counterfeiter:generate -o ./fake_alerting_engine.go ../alerting AlertingEngine
//counterfeiter:generate -o ./fake_dispatcher.go ../notifier Dispatcher
//counterfeiter:generate -o ./fake_emitter.go ../notifier Emitter
//counterfeiter:generate -o ./fake_operator.go ../operator Operator
//counterfeiter:generate -o ./fake_ratelimiter.go ../ratelimiter Limiter
//counterfeiter:generate -o ./fake_httpstatus_collector.go ../healthendpoint HTTPStatusCollector
//counterfeiter:generate -o ./fake_pinger.go ../healthendpoint Pinger
//counterfeiter:generate -o ./fake_database_status.go ../healthendpoint DatabaseStatus
