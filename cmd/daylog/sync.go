// ABOUTME: CLI commands for Charm-based sync.
// ABOUTME: Supports push, pull, status, link, unlink, and wipe operations.
package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/charm/kv"
	"github.com/fatih/color"
	"github.com/harperreed/daylog/internal/charm"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync entries across devices",
	Long: `Mirror entries to Charm Cloud and pull them on other devices.

Your data is E2E encrypted with your SSH key before upload.
The server never sees your unencrypted entries.

GETTING STARTED:

  1. Link your device (creates/uses SSH key automatically):
     daylog sync link

  2. Push your local entries:
     daylog sync push

  3. On other devices, link with the same account and pull:
     daylog sync pull

COMMANDS:

  link        Link this device to your Charm account
  unlink      Disconnect this device from Charm
  status      Show sync status and account info
  push        Mirror local entries to the cloud
  pull        Import cloud entries into the local store
  wipe        Delete cloud and local mirror data (destructive)

The local JSON or SQLite store stays authoritative; the mirror is a
backup and transport layer.`,
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this device to Charm",
	Long: `Link this device to your Charm account.

If you don't have a Charm account, one will be created using your SSH key.
If you already have an account, you'll be prompted to link via charm.sh.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		charmCmd := exec.Command("charm", "link")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to link: %w\n\nMake sure 'charm' CLI is installed: go install github.com/charmbracelet/charm@latest", err)
		}

		color.Green("\n✓ Device linked to Charm")
		fmt.Println("Run 'daylog sync push' to mirror your entries.")
		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Disconnect from Charm",
	Long: `Disconnect this device from Charm.

This does not delete your local entries.
You can link again later with 'daylog sync link'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		charmCmd := exec.Command("charm", "unlink")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to unlink: %w", err)
		}

		color.Green("✓ Device unlinked from Charm")
		fmt.Println("Your local entries are preserved.")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.GetClient()
		if err != nil {
			color.Yellow("Charm client unavailable: %v", err)
			fmt.Println("\nRun 'daylog sync link' to connect to Charm.")
			return nil
		}
		defer client.Close()

		id, err := client.ID()
		if err != nil {
			color.Yellow("Not linked to Charm")
			fmt.Println("\nRun 'daylog sync link' to connect to Charm.")
			return nil
		}

		fmt.Println("Charm ID:", id)
		fmt.Println("Server: charm.2389.dev")
		fmt.Println()

		mirrored, _ := client.ListEntries()
		local, _ := appStore.Entries()

		color.Green("✓ Connected to Charm")
		fmt.Printf("  Local entries:    %d\n", len(local))
		fmt.Printf("  Mirrored entries: %d\n", len(mirrored))
		return nil
	},
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Mirror local entries to the cloud",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := appStore.Entries()
		if err != nil {
			return fmt.Errorf("failed to read store: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("Nothing to push: store is empty.")
			return nil
		}

		client, err := charm.GetClient()
		if err != nil {
			return fmt.Errorf("failed to initialize charm client: %w", err)
		}
		defer client.Close()

		n, err := client.Push(entries)
		if err != nil {
			return fmt.Errorf("push failed after %d entries: %w", n, err)
		}

		color.Green("✓ Pushed %d entries to Charm Cloud", n)
		return nil
	},
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Import cloud entries into the local store",
	Long: `Import mirrored entries from Charm Cloud into the local store.

Entries whose dates already exist locally are skipped; pull never
overwrites local data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.GetClient()
		if err != nil {
			return fmt.Errorf("failed to initialize charm client: %w", err)
		}
		defer client.Close()

		if err := client.Sync(); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		entries, err := client.ListEntries()
		if err != nil {
			return fmt.Errorf("failed to list mirrored entries: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No mirrored entries found.")
			return nil
		}

		added := 0
		for i := range entries {
			ok, err := appStore.Append(&entries[i])
			if err != nil {
				return fmt.Errorf("failed to store %s: %w", entries[i].Date, err)
			}
			if ok {
				added++
			}
		}

		color.Green("✓ Pulled %d new entries", added)
		if skipped := len(entries) - added; skipped > 0 {
			fmt.Printf("  %d already present, skipped\n", skipped)
		}
		return nil
	},
}

var syncWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all cloud and local mirror data",
	Long: `Delete all cloud backups and the local mirror database.

This is a DESTRUCTIVE operation. The local JSON/SQLite store is NOT
touched; only the Charm mirror is wiped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("This will PERMANENTLY DELETE the cloud mirror and local mirror data.")
		fmt.Print("Type 'wipe' to confirm: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "wipe" {
			fmt.Println("Canceled.")
			return nil
		}

		result, err := kv.Wipe("daylog")
		if err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}

		color.Green("✓ Mirror wiped successfully")
		fmt.Printf("  Cloud backups deleted: %d\n", result.CloudBackupsDeleted)
		fmt.Printf("  Local files deleted: %d\n", result.LocalFilesDeleted)
		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncUnlinkCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncPushCmd)
	syncCmd.AddCommand(syncPullCmd)
	syncCmd.AddCommand(syncWipeCmd)
	rootCmd.AddCommand(syncCmd)
}
