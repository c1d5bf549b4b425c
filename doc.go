// Package browserhub provides the command-dispatch and session-lifecycle
// core of a remote browser-automation protocol server.
//
// The core receives a command identifier plus two parameter sets (locator
// parameters derived from the request path and body parameters from the
// payload), resolves the identifier to an executable handler bound to an
// active automation session, and manages the set of active sessions –
// including dynamic registration of pluggable automation backends:
//
//	srv := browserhub.New()
//	srv.RegisterDriver(driver.Capabilities{"browser": "chrome"}, "ChromeDriver, chromedriver")
//	result, err := srv.Execute(ctx, command.NewSession, nil,
//		types.Payload{"desiredCapabilities": map[string]interface{}{"browser": "chrome"}})
//
// The wire transport, request serialization and the automation backends
// themselves are external collaborators; the core only dispatches against
// the opaque driver capability a session owns.  For more details see the
// individual sub-packages.
package browserhub
