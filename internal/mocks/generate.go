package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/performance --output domain/performance --outpkg performancemock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/prediction --output domain/prediction --outpkg predictionmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Provider --dir ../domain/schedule --output domain/schedule --outpkg schedulemock --filename provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ResultsProvider --dir ../domain/schedule --output domain/schedule --outpkg schedulemock --filename results_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name OddsProvider --dir ../domain/schedule --output domain/schedule --outpkg schedulemock --filename odds_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name GameLogProvider --dir ../domain/schedule --output domain/schedule --outpkg schedulemock --filename game_log_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Provider --dir ../domain/stattable --output domain/stattable --outpkg stattablemock --filename provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Provider --dir ../domain/player --output domain/player --outpkg playermock --filename provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Provider --dir ../domain/injury --output domain/injury --outpkg injurymock --filename provider_mock.go
