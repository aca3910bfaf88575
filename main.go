package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/fleetcases/cmd"
)

// @title       Fleet cases API
// @version     1.0
// @description Case management backend for fleet vehicle incidents: cases, timeline, suppliers, surveys and customer notifications.
// @BasePath    /
func main() {
	if err := cmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
