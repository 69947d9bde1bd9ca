// Package apiclient implements a client for the netgrid platform REST
// API.
//
// A Client is built once from an immutable Config and is safe for any
// number of concurrent calls; the only shared state between calls is
// that configuration.
//
//	client, err := apiclient.New(apiclient.Config{
//	    Scheme:    "https",
//	    Host:      "api.netgrid.example",
//	    AppID:     appID,
//	    AppSecret: appSecret,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.Get(ctx, "/networks/42/user/7/", nil)
//
// Every call performs exactly one network round trip and produces
// either a *Result or an error, never both. Platform-reported errors
// are returned as *Error with the platform's code and message;
// transport failures and unparseable replies are returned as *Error
// with the CodeTransportFailure and CodeUnexpectedReply sentinel codes.
// The client never retries; retries are the caller's responsibility.
//
// Post and Put serialize their data as JSON. PostAction submits
// form-urlencoded parameters instead, for the platform's action
// endpoints:
//
//	result, err := client.PostAction(ctx, "/networks/42/actions/notify/", url.Values{
//	    "message": {"deploy finished"},
//	}, nil)
//
// Requests are authorized with a bearer token derived from the app id
// and secret (appID_appSecret). A per-call token can be supplied
// through CallOptions, for example a user access token obtained from a
// verified signed request:
//
//	result, err := client.Get(ctx, "/me/", &apiclient.CallOptions{
//	    AccessToken: token,
//	})
package apiclient
