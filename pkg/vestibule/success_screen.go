package vestibule

// SuccessPage displays the signed-in page and blocks until the user goes
// back to the login form. It shares the static page controller with the
// help page.
func SuccessPage(text StaticPageText) (*BackResult, error) {
	return staticPage(text)
}
