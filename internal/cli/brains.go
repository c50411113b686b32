package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/fairyhunter13/brainstore/internal/domain"
)

type brainJSON struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

func cmdBrains(e *env) *cli.Command {
	return &cli.Command{
		Name:  "brains",
		Usage: "Manage brains and memberships",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the brains a user belongs to",
				Flags: []cli.Flag{requiredString("user", "User id")},
				Action: func(ctx context.Context, c *cli.Command) error {
					user, err := uuidFlag(c, "user")
					if err != nil {
						return err
					}
					brains, err := e.service().UserBrains(ctx, user)
					if err != nil {
						return err
					}
					out := make([]brainJSON, 0, len(brains))
					for _, b := range brains {
						out = append(out, brainJSON{ID: b.ID, Name: b.Name})
					}
					return e.print(out)
				},
			},
			{
				Name:  "create",
				Usage: "Create a brain owned by a user",
				Flags: []cli.Flag{
					requiredString("user", "Owner user id"),
					requiredString("name", "Brain name"),
					&cli.BoolFlag{Name: "default", Usage: "Mark as the user's default brain"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					user, err := uuidFlag(c, "user")
					if err != nil {
						return err
					}
					b, err := e.service().CreateBrainForUser(ctx, user, c.String("name"), c.Bool("default"))
					if err != nil {
						return err
					}
					return e.print(brainJSON{ID: b.ID, Name: b.Name, Attributes: b.Attributes})
				},
			},
			{
				Name:  "show",
				Usage: "Show every column of a brain",
				Flags: []cli.Flag{requiredString("id", "Brain id")},
				Action: func(ctx context.Context, c *cli.Command) error {
					id, err := uuidFlag(c, "id")
					if err != nil {
						return err
					}
					b, err := e.backend.Brains.BrainByID(ctx, id)
					if err != nil {
						return err
					}
					if b == nil {
						return fmt.Errorf("%w: brain %s", domain.ErrNotFound, id)
					}
					return e.print(brainJSON{ID: b.ID, Name: b.Name, Attributes: b.Attributes})
				},
			},
			{
				Name:  "rename",
				Usage: "Rename a brain owned by a user",
				Flags: []cli.Flag{
					requiredString("user", "Owner user id"),
					requiredString("id", "Brain id"),
					requiredString("name", "New name"),
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					user, err := uuidFlag(c, "user")
					if err != nil {
						return err
					}
					id, err := uuidFlag(c, "id")
					if err != nil {
						return err
					}
					if err := e.service().RenameBrain(ctx, user, id, c.String("name")); err != nil {
						return err
					}
					return e.print(map[string]string{"status": "renamed"})
				},
			},
			{
				Name:  "default",
				Usage: "Print the user's default brain id",
				Flags: []cli.Flag{requiredString("user", "User id")},
				Action: func(ctx context.Context, c *cli.Command) error {
					user, err := uuidFlag(c, "user")
					if err != nil {
						return err
					}
					id, err := e.service().DefaultBrain(ctx, user)
					if err != nil {
						return err
					}
					return e.print(map[string]uuid.UUID{"brain_id": id})
				},
			},
			{
				Name:  "delete",
				Usage: "Delete a brain owned by a user, with its memberships and vector links",
				Flags: []cli.Flag{
					requiredString("user", "Owner user id"),
					requiredString("id", "Brain id"),
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					user, err := uuidFlag(c, "user")
					if err != nil {
						return err
					}
					id, err := uuidFlag(c, "id")
					if err != nil {
						return err
					}
					if err := e.service().DeleteBrain(ctx, user, id); err != nil {
						return err
					}
					return e.print(map[string]string{"status": "deleted"})
				},
			},
		},
	}
}

func cmdFiles(e *env) *cli.Command {
	return &cli.Command{
		Name:  "files",
		Usage: "Manage files ingested into brains",
		Commands: []*cli.Command{
			cmdFilesCount(e),
			{
				Name:  "delete",
				Usage: "Remove a file from a brain and collect orphaned vectors",
				Flags: []cli.Flag{
					requiredString("user", "Owner user id"),
					requiredString("brain", "Brain id"),
					requiredString("file", "File name as recorded in vector metadata"),
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					user, err := uuidFlag(c, "user")
					if err != nil {
						return err
					}
					brain, err := uuidFlag(c, "brain")
					if err != nil {
						return err
					}
					msg, err := e.service().RemoveFile(ctx, user, brain, c.String("file"))
					if err != nil {
						return err
					}
					return e.print(map[string]string{"message": msg})
				},
			},
		},
	}
}

func cmdFilesCount(e *env) *cli.Command {
	return &cli.Command{
		Name:  "count",
		Usage: "Count the vectors stored for a file name",
		Flags: []cli.Flag{requiredString("name", "File name as recorded in vector metadata")},
		Action: func(ctx context.Context, c *cli.Command) error {
			n, err := e.backend.Vectors.CountByFileName(ctx, c.String("name"))
			if err != nil {
				return err
			}
			return e.print(map[string]int64{"vectors": n})
		},
	}
}

type vectorJSON struct {
	ID        uuid.UUID      `json:"id"`
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"metadata"`
	Embedding []float32      `json:"embedding,omitempty"`
}

func cmdVectorsShow(e *env) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Show a stored vector",
		Flags: []cli.Flag{requiredString("id", "Vector id")},
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := uuidFlag(c, "id")
			if err != nil {
				return err
			}
			v, err := e.backend.Vectors.GetVector(ctx, id)
			if err != nil {
				return err
			}
			if v == nil {
				return fmt.Errorf("%w: vector %s", domain.ErrNotFound, id)
			}
			return e.print(vectorJSON{ID: v.ID, Content: v.Content, Metadata: v.Metadata, Embedding: v.Embedding})
		},
	}
}

func cmdVectors(e *env) *cli.Command {
	return &cli.Command{
		Name:  "vectors",
		Usage: "Inspect vectors and their brain links",
		Commands: []*cli.Command{
			cmdVectorsShow(e),
			{
				Name:  "by-sha1",
				Usage: "List vector ids produced from a file checksum",
				Flags: []cli.Flag{requiredString("sha1", "File SHA-1")},
				Action: func(ctx context.Context, c *cli.Command) error {
					ids, err := e.backend.Brains.VectorIDsByFileSHA1(ctx, c.String("sha1"))
					if err != nil {
						return err
					}
					return e.print(ids)
				},
			},
			{
				Name:  "list",
				Usage: "List vector ids linked to a brain",
				Flags: []cli.Flag{requiredString("brain", "Brain id")},
				Action: func(ctx context.Context, c *cli.Command) error {
					brain, err := uuidFlag(c, "brain")
					if err != nil {
						return err
					}
					ids, err := e.backend.Brains.BrainVectorIDs(ctx, brain)
					if err != nil {
						return err
					}
					return e.print(ids)
				},
			},
			{
				Name:  "link",
				Usage: "Link an existing vector to a brain",
				Flags: []cli.Flag{
					requiredString("brain", "Brain id"),
					requiredString("vector", "Vector id"),
					requiredString("sha1", "File SHA-1 of the vector's source"),
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					brain, err := uuidFlag(c, "brain")
					if err != nil {
						return err
					}
					vector, err := uuidFlag(c, "vector")
					if err != nil {
						return err
					}
					bv, err := e.backend.Brains.CreateBrainVector(ctx, brain, vector, c.String("sha1"))
					if err != nil {
						return err
					}
					return e.print(map[string]any{"brain_id": bv.BrainID, "vector_id": bv.VectorID, "file_sha1": bv.FileSHA1})
				},
			},
		},
	}
}
