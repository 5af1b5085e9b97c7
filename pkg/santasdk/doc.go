/*
Package santasdk provides the wire types and a client SDK for the Secret Santa
service.

# Overview

A group is created once with its members. The response carries one private
guest link per member; the link is the only credential a member ever needs.
Opening a link reveals the holder's recipient, computing the group's
assignment on first use.

	client := santasdk.NewSDKClient("https://santa.example.com")

	created, err := client.CreateGroup(ctx, santasdk.CreateGroupRequest{
		Name:    "Office",
		Budget:  "$20",
		Members: []string{"Al", "Bo", "Cy"},
	})

	for _, link := range created.Links {
		// hand link.URL to link.Member
	}

	guest, err := client.GetGuest(ctx, created.Links[0].Token)
	fmt.Println(guest.Member, "gives to", guest.Recipient)

# Errors

Non-2xx responses are returned as *APIError, which carries the status code,
a machine-readable code and, for validation failures, per-field details:

	var apiErr *santasdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		// unknown group or link
	}

# Validation

The server normalizes and validates requests with the same code clients can
call ahead of time:

	req = req.Normalize()
	if errs := req.Validate(); errs != nil {
		// errs maps field names to reasons
	}
*/
package santasdk
