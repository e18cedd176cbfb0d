package gym

import (
	"context"

	"github.com/goorum04/Nlvip-sub000/internal/tools"
	"github.com/goorum04/Nlvip-sub000/pkg/errors"
)

const defaultRecentPostsLimit = 5

func newRecentPostsTool(feed FeedRepository) tools.Tool {
	return tools.New(
		"list_recent_posts",
		"Listar los posts más recientes del feed para moderación",
		tools.CapabilityReadOnly,
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Número de posts a mostrar (por defecto 5)",
				},
			},
		},
		func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			limit := intArgOrDefault(args, "limit", defaultRecentPostsLimit)
			if limit <= 0 {
				limit = defaultRecentPostsLimit
			}

			posts, err := feed.RecentPosts(ctx, limit)
			if err != nil {
				return nil, errors.Wrap(err, "failed to list recent posts")
			}

			return map[string]interface{}{"posts": posts}, nil
		},
	)
}

func newHidePostTool(feed FeedRepository) tools.Tool {
	return tools.New(
		"hide_post",
		"Ocultar/moderar un post del feed social",
		tools.CapabilityMutating,
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"post_id": map[string]interface{}{
					"type":        "string",
					"description": "UUID del post a ocultar",
				},
			},
			"required": []string{"post_id"},
		},
		func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			postID, err := stringArg(args, "post_id")
			if err != nil {
				return nil, err
			}

			if err := feed.HidePost(ctx, postID); err != nil {
				return nil, errors.Wrap(err, "failed to hide post")
			}

			return map[string]interface{}{
				"post_id": postID,
				"message": "Post ocultado",
			}, nil
		},
	)
}
