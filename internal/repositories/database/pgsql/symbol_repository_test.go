package pgsql

import (
	"testing"

	portsrepo "github.com/SscSPs/currency_board/internal/core/ports/repositories"
	"github.com/stretchr/testify/assert"
)

func TestSymbolRepositoryRunsUpsertsInTransactions(t *testing.T) {
	var repo portsrepo.SymbolRepositoryFacade = NewSymbolRepository(nil)

	_, ok := repo.(portsrepo.TransactionManager)
	assert.True(t, ok, "postgres symbol store must expose its transaction manager")
}
