package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tabi/debugs"
	"github.com/reusee/tabi/tabscore"
)

type Module struct {
	dscope.Module
	TabScore tabscore.Module
	Debugs   debugs.Module
}
