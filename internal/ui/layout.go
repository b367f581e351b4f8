package ui

import "time"

// Chrome rows around the page box: header, command bar, link bar, status line.
const chromeRows = 4

// Border cells the page box spends on each axis.
const pageBorderCells = 2

// Horizontal padding inside the rendered markdown.
const markdownGutter = 2

// Truncation widths for the header bar.
const (
	headerPathWidth  = 40
	headerTitleWidth = 40
)

// Address prompt input limit.
const addressCharLimit = 120

// Help overlay dimensions.
const (
	helpModalWidth  = 42
	helpKeyColWidth = 14
)

// statusTTL is how long info and warning notices stay on the status line.
const statusTTL = 5 * time.Second
