package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newFriendsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friends",
		Short: "Friend management commands",
	}

	cmd.AddCommand(newFriendsListCmd())
	cmd.AddCommand(newFriendsSearchCmd())
	cmd.AddCommand(newFriendsRequestsCmd())
	cmd.AddCommand(newFriendsAddCmd())
	cmd.AddCommand(newFriendsAcceptCmd())
	cmd.AddCommand(newFriendsDeclineCmd())

	return cmd
}

func newFriendsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your friends",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result UserList
			if err := client.Get("/api/v1/friends", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFriendsSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search users by display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result UserList
			if err := client.Get("/api/v1/users/search?q="+url.QueryEscape(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFriendsRequestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "requests",
		Short: "List pending incoming friend requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result FriendRequestList
			if err := client.Get("/api/v1/friends/requests", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFriendsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <user-id>",
		Short: "Send a friend request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"to_user_id": args[0]}

			var result FriendRequest
			if err := client.Post("/api/v1/friends/requests", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFriendsAcceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <request-id>",
		Short: "Accept a friend request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result FriendRequest
			if err := client.Post("/api/v1/friends/requests/"+args[0]+"/accept", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFriendsDeclineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decline <request-id>",
		Short: "Decline a friend request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result FriendRequest
			if err := client.Post("/api/v1/friends/requests/"+args[0]+"/decline", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
