package tabconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tabi/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
