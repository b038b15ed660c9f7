/*
 * Copyright (c) 2025-2026, The wadtools authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package main

import (
	"github.com/wadtools/mapq/cmd/mapq"
)

func main() {
	mapq.Execute()
}
