package tabscore

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tabi/logs"
	"github.com/reusee/tabi/tabconfigs"
)

type Module struct {
	dscope.Module
	Logs       logs.Module
	TabConfigs tabconfigs.Module
}
