package utils

import (
	"context"

	"code.cloudfoundry.org/lager/v3"

	"github.com/osb-autoscaler/autoscaler-broker/middlewares"
)

// DataForContext collects the values stored under dataKeys as log data.
// Keys without a value are left out.
func DataForContext(ctx context.Context, dataKeys ...middlewares.ContextKey) lager.Data {
	data := lager.Data{}
	for _, key := range dataKeys {
		if value := ctx.Value(key); value != nil {
			data[string(key)] = value
		}
	}

	return data
}
