// SPDX-License-Identifier: MIT

// Command lvtext is a small front-end over the lvtext packages:
//
//	lvtext distance kitten sitting
//	lvtext align intention execution --placeholder _
//	lvtext segment 他特别喜欢北京烤鸭 --word 他 --word 特别 --word 喜欢 --word 北京烤鸭
//	lvtext wer "we can only see a short distance ahead" "we canon l y see ash ort distance ahead"
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
