package slot

import "github.com/SahanHeshan/GovPortal/pkg/txmanager"

// DBExecutor is the database handle the repository runs against.
// Both *sql.DB and the transaction carried by a txmanager context satisfy it.
type DBExecutor = txmanager.Executor
