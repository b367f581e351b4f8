package ui

// wordmark is the app name as it appears in the header.
const wordmark = "signpost"

// renderLogo renders the wordmark cell of the header bar.
func renderLogo(styles Styles, bg BgStyle) string {
	return bg.Render(wordmark, styles.Logo)
}
