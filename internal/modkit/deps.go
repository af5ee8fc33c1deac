package modkit

import (
	"comprehend/internal/modkit/repokit"
	"comprehend/internal/platform/config"
	"comprehend/internal/platform/logger"
	"comprehend/internal/platform/store"
)

// Deps holds core dependencies passed to modules.
// PG and CH are nil when the backend is disabled
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}

// FromStore fills PG and CH from an opened store
func (d Deps) FromStore(st *store.Store) Deps {
	if st == nil {
		return d
	}
	d.PG, d.CH = st.PG, st.CH
	return d
}
