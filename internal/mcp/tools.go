package mcp

import "github.com/mark3labs/mcp-go/mcp"

var listUsersTool = mcp.NewTool("list_users",
	mcp.WithDescription("List every user in insertion order."),
)

var getUserTool = mcp.NewTool("get_user",
	mcp.WithDescription("Get a single user by id."),
	mcp.WithNumber("id",
		mcp.Required(),
		mcp.Description("User id"),
	),
)

var createUserTool = mcp.NewTool("create_user",
	mcp.WithDescription("Create a user. The id is assigned by the store."),
	mcp.WithString("nombre",
		mcp.Required(),
		mcp.Description("User name"),
	),
	mcp.WithString("email",
		mcp.Required(),
		mcp.Description("User email"),
	),
)

var updateUserTool = mcp.NewTool("update_user",
	mcp.WithDescription("Replace the name and email of an existing user."),
	mcp.WithNumber("id",
		mcp.Required(),
		mcp.Description("User id"),
	),
	mcp.WithString("nombre",
		mcp.Required(),
		mcp.Description("New name"),
	),
	mcp.WithString("email",
		mcp.Required(),
		mcp.Description("New email"),
	),
)

var deleteUserTool = mcp.NewTool("delete_user",
	mcp.WithDescription("Delete a user by id and return the removed record."),
	mcp.WithNumber("id",
		mcp.Required(),
		mcp.Description("User id"),
	),
)
