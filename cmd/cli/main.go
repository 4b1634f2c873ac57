package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mfcardoso/soure-transport/internal/config"
	"github.com/mfcardoso/soure-transport/pkg/clients/geminiclient"
	"github.com/mfcardoso/soure-transport/pkg/clients/sheetsclient"
	"github.com/mfcardoso/soure-transport/pkg/core/model"
	"github.com/mfcardoso/soure-transport/pkg/core/schedule"
	"github.com/mfcardoso/soure-transport/pkg/core/services"
	"github.com/mfcardoso/soure-transport/pkg/store"
	"github.com/mfcardoso/soure-transport/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	cfg    *config.Config
	store  store.Store
	logger *zap.Logger
	ctx    context.Context
}

var (
	env string
	app *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Soure Transport CLI - Manage municipal bus dispatch",
		Long:  `A CLI tool for managing transport requests, driver and bus assignments, and weekly schedules.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.logger != nil {
				app.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment suffix for config and token files (test, prod, etc.)")

	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(listDriversCmd())
	rootCmd.AddCommand(addDriverCmd())
	rootCmd.AddCommand(deleteDriverCmd())
	rootCmd.AddCommand(listBusesCmd())
	rootCmd.AddCommand(addBusCmd())
	rootCmd.AddCommand(deleteBusCmd())
	rootCmd.AddCommand(addUnavailabilityCmd())
	rootCmd.AddCommand(deleteUnavailabilityCmd())
	rootCmd.AddCommand(freeResourcesCmd())
	rootCmd.AddCommand(addRequestCmd())
	rootCmd.AddCommand(editRequestCmd())
	rootCmd.AddCommand(setStatusCmd())
	rootCmd.AddCommand(deleteRequestCmd())
	rootCmd.AddCommand(scheduleCmd())
	rootCmd.AddCommand(exportScheduleCmd())
	rootCmd.AddCommand(shiftsCmd())
	rootCmd.AddCommand(editShiftCmd())
	rootCmd.AddCommand(assignShiftCmd())
	rootCmd.AddCommand(rotateShiftsCmd())
	rootCmd.AddCommand(entitiesCmd())
	rootCmd.AddCommand(analyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, and the snapshot store
func initApp() error {
	var err error
	app = &App{
		ctx: context.Background(),
	}

	app.logger, err = logging.InitLogger(logEnv())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.logger.Info("Starting application", zap.String("environment", logEnv()))

	app.logger.Info("Loading configuration")
	app.cfg, err = config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.logger.Debug("Configuration loaded successfully")

	switch app.cfg.StoreBackend {
	case config.StoreBackendRedis:
		app.logger.Info("Connecting to redis", zap.String("addr", app.cfg.Redis.Addr))
		app.store, err = store.NewRedisStore(app.cfg.Redis.Addr, app.cfg.Redis.Password, app.cfg.Redis.DB, app.logger)
		if err != nil {
			return fmt.Errorf("failed to connect to store: %w", err)
		}
	case config.StoreBackendFile:
		app.logger.Info("Using file store", zap.String("path", app.cfg.File.Path))
		app.store = store.NewFileStore(app.cfg.File.Path, app.logger)
	}

	return nil
}

func logEnv() string {
	if env == "" {
		return "default"
	}
	return env
}

// Command definitions

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the snapshot, seeding initial data if the store is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := app.store.Load(app.ctx)
			if err != nil {
				return err
			}

			fmt.Printf("\nStore ready.\n\n")
			fmt.Printf("Drivers:          %d\n", len(snapshot.Drivers))
			fmt.Printf("Buses:            %d\n", len(snapshot.Buses))
			fmt.Printf("Shifts:           %d\n", len(snapshot.Shifts))
			fmt.Printf("Entities:         %d\n", len(snapshot.Entities))
			fmt.Printf("Requests:         %d\n", len(snapshot.Requests))
			fmt.Printf("Unavailabilities: %d\n\n", len(snapshot.Unavailabilities))
			return nil
		},
	}
}

func listDriversCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listDrivers",
		Short: "List the driver roster with shifts and unavailability",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := app.store.Load(app.ctx)
			if err != nil {
				return err
			}

			fmt.Printf("\nDrivers (%d):\n\n", len(snapshot.Drivers))
			for _, d := range snapshot.Drivers {
				shiftName := "-"
				if shift := snapshot.ShiftByID(d.CurrentShiftID); shift != nil {
					shiftName = shift.Name
				}
				fmt.Printf("  %s  %-20s license %-8s phone %-12s shift %s\n",
					d.ID, d.Name, d.LicenseNumber, d.Phone, shiftName)
			}

			if len(snapshot.Unavailabilities) > 0 {
				fmt.Printf("\nUnavailability periods:\n\n")
				for _, u := range snapshot.Unavailabilities {
					name := "unknown driver"
					if d := snapshot.DriverByID(u.DriverID); d != nil {
						name = d.Name
					}
					fmt.Printf("  %s  %-20s %s to %s (%s) %s\n",
						u.ID, name, u.StartDate, u.EndDate, u.Type, u.Description)
				}
			}
			fmt.Println()
			return nil
		},
	}
}

func addDriverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addDriver <name>",
		Short: "Add a driver to the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			license, _ := cmd.Flags().GetString("license")
			phone, _ := cmd.Flags().GetString("phone")
			shiftID, _ := cmd.Flags().GetString("shift")

			driver, err := services.SaveDriver(app.ctx, app.store, app.logger, model.Driver{
				Name:           args[0],
				LicenseNumber:  license,
				Phone:          phone,
				CurrentShiftID: shiftID,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\nDriver added: %s (%s)\n\n", driver.Name, driver.ID)
			return nil
		},
	}
	cmd.Flags().String("license", "", "Driving license number")
	cmd.Flags().String("phone", "", "Contact phone")
	cmd.Flags().String("shift", "", "Shift id to place the driver on")
	return cmd
}

func deleteDriverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deleteDriver <driver_id>",
		Short: "Remove a driver from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.DeleteDriver(app.ctx, app.store, app.logger, args[0]); err != nil {
				return err
			}
			fmt.Printf("\nDriver %s removed.\n\n", args[0])
			return nil
		},
	}
}

func listBusesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listBuses",
		Short: "List the fleet",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := app.store.Load(app.ctx)
			if err != nil {
				return err
			}

			fmt.Printf("\nBuses (%d):\n\n", len(snapshot.Buses))
			for _, b := range snapshot.Buses {
				fmt.Printf("  %s  %-10s %-20s %d seats\n", b.ID, b.Plate, b.Model, b.Capacity)
			}
			fmt.Println()
			return nil
		},
	}
}

func addBusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addBus <plate> <capacity>",
		Short: "Add a bus to the fleet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			capacity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("capacity must be a number: %w", err)
			}
			busModel, _ := cmd.Flags().GetString("model")

			bus, err := services.SaveBus(app.ctx, app.store, app.logger, model.Bus{
				Plate:    args[0],
				Model:    busModel,
				Capacity: capacity,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\nBus added: %s (%s)\n\n", bus.Plate, bus.ID)
			return nil
		},
	}
	cmd.Flags().String("model", "", "Bus model")
	return cmd
}

func deleteBusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deleteBus <bus_id>",
		Short: "Remove a bus from the fleet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.DeleteBus(app.ctx, app.store, app.logger, args[0]); err != nil {
				return err
			}
			fmt.Printf("\nBus %s removed.\n\n", args[0])
			return nil
		},
	}
}

func addUnavailabilityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addUnavailability <driver_id> <start_date> <end_date>",
		Short: "Record a whole-day unavailability period for a driver",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("type")
			description, _ := cmd.Flags().GetString("description")

			unavailability, err := services.AddUnavailability(app.ctx, app.store, app.logger, model.Unavailability{
				DriverID:    args[0],
				StartDate:   args[1],
				EndDate:     args[2],
				Type:        model.UnavailabilityType(strings.ToUpper(kind)),
				Description: description,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\nUnavailability recorded: %s (%s to %s)\n\n",
				unavailability.ID, unavailability.StartDate, unavailability.EndDate)
			return nil
		},
	}
	cmd.Flags().String("type", "OTHER", "Type: VACATION, BREAK or OTHER")
	cmd.Flags().String("description", "", "Free-form note")
	return cmd
}

func deleteUnavailabilityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deleteUnavailability <unavailability_id>",
		Short: "Remove a recorded unavailability period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.DeleteUnavailability(app.ctx, app.store, app.logger, args[0]); err != nil {
				return err
			}
			fmt.Printf("\nUnavailability %s removed.\n\n", args[0])
			return nil
		},
	}
}

func freeResourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freeResources <date>",
		Short: "List drivers and buses free for a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			departure, _ := cmd.Flags().GetString("departure")
			returnTime, _ := cmd.Flags().GetString("return")
			requestID, _ := cmd.Flags().GetString("request")

			result, err := services.FreeResources(app.ctx, app.store, app.logger, schedule.TimeWindow{
				Date:  args[0],
				Start: departure,
				End:   returnTime,
			}, requestID)
			if err != nil {
				return err
			}

			fmt.Printf("\nFree drivers (%d):\n", len(result.Drivers))
			for _, d := range result.Drivers {
				fmt.Printf("  %s  %s\n", d.ID, d.Name)
			}
			fmt.Printf("\nFree buses (%d):\n", len(result.Buses))
			for _, b := range result.Buses {
				fmt.Printf("  %s  %s (%d seats)\n", b.ID, b.Plate, b.Capacity)
			}
			fmt.Println()
			return nil
		},
	}
	cmd.Flags().String("departure", "", "Departure time (HH:MM)")
	cmd.Flags().String("return", "", "Return time (HH:MM)")
	cmd.Flags().String("request", "", "Request id being edited, so its own assignments don't block")
	return cmd
}

func addRequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addRequest",
		Short: "Create a transport request, optionally recurring weekly",
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := requestFromFlags(cmd)
			if err != nil {
				return err
			}

			weekdays, _ := cmd.Flags().GetIntSlice("weekdays")
			until, _ := cmd.Flags().GetString("until")

			if len(weekdays) > 0 || until != "" {
				result, err := services.CreateRecurring(app.ctx, app.store, app.logger, *request, weekdays, until)
				if err != nil {
					return err
				}

				fmt.Printf("\nCreated %d requests:\n\n", len(result.Requests))
				for _, r := range result.Requests {
					fmt.Printf("  %s  %s  %s\n", r.ID, r.DepartureDate, r.Destination)
				}
				fmt.Println()
				return nil
			}

			result, err := services.SaveRequest(app.ctx, app.store, app.logger, *request)
			if err != nil {
				return err
			}

			printSavedRequest(result)
			return nil
		},
	}
	addRequestFlags(cmd)
	cmd.Flags().IntSlice("weekdays", nil, "Recur weekly on these days (0=Sunday .. 6=Saturday)")
	cmd.Flags().String("until", "", "Last date of the recurrence (inclusive)")
	return cmd
}

func editRequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "editRequest <request_id>",
		Short: "Replace a stored transport request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := requestFromFlags(cmd)
			if err != nil {
				return err
			}
			request.ID = args[0]

			stored, err := app.store.Load(app.ctx)
			if err != nil {
				return err
			}
			if existing := stored.RequestByID(request.ID); existing != nil {
				// An edit keeps the stored status so COMPLETED stays sticky
				request.Status = existing.Status
			}

			result, err := services.SaveRequest(app.ctx, app.store, app.logger, *request)
			if err != nil {
				return err
			}

			printSavedRequest(result)
			return nil
		},
	}
	addRequestFlags(cmd)
	return cmd
}

// addRequestFlags registers the shared request field flags
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().String("requester", "", "Requester name")
	cmd.Flags().String("destination", "", "Trip destination")
	cmd.Flags().String("date", "", "Departure date (YYYY-MM-DD)")
	cmd.Flags().String("departure", "", "Departure time (HH:MM)")
	cmd.Flags().String("return", "", "Return time (HH:MM)")
	cmd.Flags().Int("passengers", 0, "Passenger count")
	cmd.Flags().String("notes", "", "Free-form notes")
	cmd.Flags().StringSlice("assign", nil, "Assignment as driver_id:bus_id (repeatable)")
}

// requestFromFlags builds a request from the shared flag set
func requestFromFlags(cmd *cobra.Command) (*model.BusRequest, error) {
	requester, _ := cmd.Flags().GetString("requester")
	destination, _ := cmd.Flags().GetString("destination")
	date, _ := cmd.Flags().GetString("date")
	departure, _ := cmd.Flags().GetString("departure")
	returnTime, _ := cmd.Flags().GetString("return")
	passengers, _ := cmd.Flags().GetInt("passengers")
	notes, _ := cmd.Flags().GetString("notes")
	assignSpecs, _ := cmd.Flags().GetStringSlice("assign")

	request := &model.BusRequest{
		RequesterName:  requester,
		Destination:    destination,
		DepartureDate:  date,
		DepartureTime:  departure,
		ReturnTime:     returnTime,
		PassengerCount: passengers,
		Notes:          notes,
	}

	for _, spec := range assignSpecs {
		parts := strings.SplitN(spec, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("assignment %q must be driver_id:bus_id", spec)
		}
		request.Assignments = append(request.Assignments, model.Assignment{
			DriverID: parts[0],
			BusID:    parts[1],
		})
	}

	return request, nil
}

func printSavedRequest(result *services.SaveRequestResult) {
	verb := "updated"
	if result.Created {
		verb = "created"
	}
	fmt.Printf("\nRequest %s: %s\n", verb, result.Request.ID)
	fmt.Printf("Status: %s\n", result.Request.Status)
	if len(result.Request.Assignments) > 0 {
		fmt.Printf("Capacity: %d seats for %d passengers\n",
			result.Capacity.TotalCapacity, result.Request.PassengerCount)
		if result.Capacity.Insufficient {
			fmt.Printf("WARNING: assigned capacity does not cover the passenger count\n")
		}
	}
	fmt.Println()
}

func setStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setStatus <request_id> <status>",
		Short: "Set a request's status (PENDING, ASSIGNED, COMPLETED, CANCELLED)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := services.SetStatus(app.ctx, app.store, app.logger,
				args[0], model.RequestStatus(strings.ToUpper(args[1])))
			if err != nil {
				return err
			}

			fmt.Printf("\nRequest %s is now %s.\n\n", request.ID, request.Status)
			return nil
		},
	}
}

func deleteRequestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deleteRequest <request_id>",
		Short: "Delete a transport request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.DeleteRequest(app.ctx, app.store, app.logger, args[0]); err != nil {
				return err
			}
			fmt.Printf("\nRequest %s deleted.\n\n", args[0])
			return nil
		},
	}
}

func scheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule <start_date> <end_date>",
		Short: "Show the schedule between two dates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			driverID, _ := cmd.Flags().GetString("driver")

			report, err := services.BuildScheduleReport(app.ctx, app.store, app.logger, args[0], args[1], driverID)
			if err != nil {
				return err
			}

			fmt.Printf("\nSchedule %s to %s (%d trips):\n\n", report.StartDate, report.EndDate, len(report.Trips))
			for _, trip := range report.Trips {
				fmt.Printf("  %s %s-%s  %-25s %-20s %d pax  %s\n",
					trip.Date, trip.Departure, trip.Return,
					trip.Destination, trip.Requester, trip.Passengers, trip.Status)
				if len(trip.Drivers) > 0 {
					fmt.Printf("      drivers: %s  buses: %s\n",
						strings.Join(trip.Drivers, ", "), strings.Join(trip.Buses, ", "))
				}
				if trip.Capacity.Insufficient {
					fmt.Printf("      WARNING: capacity %d below %d passengers\n",
						trip.Capacity.TotalCapacity, trip.Passengers)
				}
			}
			fmt.Println()
			return nil
		},
	}
	cmd.Flags().String("driver", "", "Only trips involving this driver id")
	return cmd
}

func exportScheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exportSchedule <start_date> <end_date>",
		Short: "Publish the schedule for a date range to Google Sheets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.logger.Info("Loading OAuth client configuration")
			oauthCfg, err := config.LoadOAuthClientWithEnv(env)
			if err != nil {
				return fmt.Errorf("failed to load OAuth client config: %w", err)
			}

			app.logger.Info("Initializing sheets client")
			sheetsClient, err := sheetsclient.NewClient(app.ctx, oauthCfg, env)
			if err != nil {
				return fmt.Errorf("failed to create sheets client: %w", err)
			}

			report, err := services.ExportSchedule(app.ctx, app.store, sheetsClient, app.logger,
				app.cfg.ScheduleSheetID, args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Printf("\nPublished %d trips to spreadsheet %s.\n\n", len(report.Trips), app.cfg.ScheduleSheetID)
			return nil
		},
	}
}

func shiftsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shifts",
		Short: "Show shift occupancy",
		RunE: func(cmd *cobra.Command, args []string) error {
			occupancies, err := services.ShiftOverview(app.ctx, app.store, app.logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nShifts (%d):\n\n", len(occupancies))
			for _, o := range occupancies {
				marker := ""
				if o.OverCapacity {
					marker = "  OVER CAPACITY"
				}
				fmt.Printf("  %s  %-20s %s  %d/%d drivers%s\n",
					o.Shift.ID, o.Shift.Name, o.Shift.Hours, o.DriverCount, o.Shift.Slots, marker)
			}
			fmt.Println()
			return nil
		},
	}
}

func editShiftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "editShift <shift_id>",
		Short: "Edit a shift definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := app.store.Load(app.ctx)
			if err != nil {
				return err
			}
			existing := snapshot.ShiftByID(args[0])
			if existing == nil {
				return fmt.Errorf("shift %s not found", args[0])
			}

			// Flags left unset keep the stored definition
			shift := *existing
			if cmd.Flags().Changed("name") {
				shift.Name, _ = cmd.Flags().GetString("name")
			}
			if cmd.Flags().Changed("hours") {
				shift.Hours, _ = cmd.Flags().GetString("hours")
			}
			if cmd.Flags().Changed("slots") {
				shift.Slots, _ = cmd.Flags().GetInt("slots")
			}
			if cmd.Flags().Changed("color") {
				shift.Color, _ = cmd.Flags().GetString("color")
			}

			saved, err := services.SaveShift(app.ctx, app.store, app.logger, shift)
			if err != nil {
				return err
			}

			fmt.Printf("\nShift updated: %s  %s  %s  %d slots\n\n",
				saved.ID, saved.Name, saved.Hours, saved.Slots)
			return nil
		},
	}
	cmd.Flags().String("name", "", "Shift display name")
	cmd.Flags().String("hours", "", "Free-text hours label")
	cmd.Flags().Int("slots", 0, "Advisory maximum number of drivers")
	cmd.Flags().String("color", "", "Display color")
	return cmd
}

func assignShiftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assignShift <driver_id> <shift_id>",
		Short: "Move a driver to a shift",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.AssignShift(app.ctx, app.store, app.logger, args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("\nDriver %s moved to shift %s.\n\n", args[0], args[1])
			return nil
		},
	}
}

func rotateShiftsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotateShifts",
		Short: "Advance every driver to the next shift",
		RunE: func(cmd *cobra.Command, args []string) error {
			rotated, err := services.RotateShifts(app.ctx, app.store, app.logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nRotated %d drivers.\n\n", len(rotated))
			return nil
		},
	}
}

func entitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entities",
		Short: "List the requesting entities directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := app.store.Load(app.ctx)
			if err != nil {
				return err
			}

			fmt.Printf("\nEntities (%d):\n\n", len(snapshot.Entities))
			for _, e := range snapshot.Entities {
				fmt.Printf("  %s  %-25s %s  %s\n", e.ID, e.Name, e.Address, e.Phone)
				for _, cp := range e.ContactPersons {
					fmt.Printf("      contact: %s (%s) %s\n", cp.Name, cp.Position, cp.Phone)
				}
			}
			fmt.Println()
			return nil
		},
	}
}

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Generate an advisory summary of the current schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			generator, err := geminiclient.NewClient(app.ctx, app.cfg.Advisory.Model, app.cfg.Advisory.APIKeyEnv)
			if err != nil {
				// No key or unreachable backend still yields the fallback text
				app.logger.Warn("Advisory client unavailable", zap.Error(err))
				fmt.Printf("\n%s\n\n", geminiclient.FallbackAdvisory)
				return nil
			}

			result, err := services.AnalyzeSchedule(app.ctx, app.store, generator, app.logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n%s\n\n", result.Advisory)
			return nil
		},
	}
}
