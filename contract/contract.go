//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import "context"

// ISupervisor keeps long-running workers alive for the lifetime of the server.
type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker does one job until its context is cancelled. It may panic or fail,
// restarting it is the supervisor's business.
type Worker interface {
	Run(ctx context.Context) error
}
