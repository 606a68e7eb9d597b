package main

import (
	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.Fatalf("%v", err)
	}
}
