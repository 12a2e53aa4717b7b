package recipes

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/voxforge/storage-api/internal/errors"
	redisclient "github.com/voxforge/storage-api/internal/redis"
)

const (
	recipeTypeKeyPrefix = "recipes:type:"
	recipeKeyPrefix     = "recipes:output:"
	recipeTypeIndexKey  = "recipes:types"
	recipeIndexKey      = "recipes:outputs"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis recipe repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed recipe repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) PutRecipeType(ctx context.Context, input PutRecipeTypeInput) (*PutRecipeTypeOutput, error) {
	if err := input.RecipeType.Validate(); err != nil {
		return nil, err
	}

	key := recipeTypeKeyPrefix + input.RecipeType.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check recipe type %s", input.RecipeType.ID)
	}
	if exists != 0 {
		return nil, errors.AlreadyExistsf("recipe type %s is already registered", input.RecipeType.ID)
	}

	data, err := json.Marshal(input.RecipeType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal recipe type")
	}
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store recipe type %s", input.RecipeType.ID)
	}
	if err := r.client.SAdd(ctx, recipeTypeIndexKey, input.RecipeType.ID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to index recipe type %s", input.RecipeType.ID)
	}

	return &PutRecipeTypeOutput{RecipeType: input.RecipeType}, nil
}

func (r *redisRepository) GetRecipeType(ctx context.Context, input GetRecipeTypeInput) (*GetRecipeTypeOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("recipe type ID cannot be empty")
	}

	result, err := r.client.Get(ctx, recipeTypeKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("recipe type %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get recipe type %s", input.ID)
	}

	var rt RecipeType
	if err := json.Unmarshal([]byte(result), &rt); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal recipe type")
	}
	return &GetRecipeTypeOutput{RecipeType: rt}, nil
}

func (r *redisRepository) ListRecipeTypes(ctx context.Context) (*ListRecipeTypesOutput, error) {
	ids, err := r.client.SMembers(ctx, recipeTypeIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipe types")
	}
	sort.Strings(ids)

	out := &ListRecipeTypesOutput{RecipeTypes: make([]RecipeType, 0, len(ids))}
	for _, id := range ids {
		got, err := r.GetRecipeType(ctx, GetRecipeTypeInput{ID: id})
		if err != nil {
			// Index and payload drifted; surface rather than skip silently.
			return nil, err
		}
		out.RecipeTypes = append(out.RecipeTypes, got.RecipeType)
	}
	return out, nil
}

func (r *redisRepository) PutRecipe(ctx context.Context, input PutRecipeInput) (*PutRecipeOutput, error) {
	if err := input.Recipe.Validate(); err != nil {
		return nil, err
	}

	if _, err := r.GetRecipeType(ctx, GetRecipeTypeInput{ID: input.Recipe.Type}); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.FailedPreconditionf(
				"recipe %s references unregistered type %s", input.Recipe.Output.Name, input.Recipe.Type)
		}
		return nil, err
	}

	key := recipeKeyPrefix + input.Recipe.Output.Name
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check recipe for %s", input.Recipe.Output.Name)
	}
	if exists != 0 {
		return nil, errors.AlreadyExistsf("a recipe producing %s is already registered", input.Recipe.Output.Name)
	}

	if err := r.checkCycle(ctx, input.Recipe); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Recipe)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal recipe")
	}
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store recipe for %s", input.Recipe.Output.Name)
	}
	if err := r.client.SAdd(ctx, recipeIndexKey, input.Recipe.Output.Name).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to index recipe for %s", input.Recipe.Output.Name)
	}

	return &PutRecipeOutput{Recipe: input.Recipe}, nil
}

// checkCycle rejects a recipe whose inputs transitively require its own
// output. Without this the resolver would never terminate on such a
// graph, so cyclic definitions are refused at insertion time.
func (r *redisRepository) checkCycle(ctx context.Context, recipe Recipe) error {
	visited := map[string]bool{}
	stack := make([]string, 0, len(recipe.Inputs))
	for _, in := range recipe.Inputs {
		stack = append(stack, in.Name)
	}

	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if name == recipe.Output.Name {
			return errors.FailedPreconditionf(
				"recipe for %s would introduce a dependency cycle", recipe.Output.Name)
		}
		if visited[name] {
			continue
		}
		visited[name] = true

		got, err := r.GetRecipeByOutput(ctx, GetRecipeByOutputInput{OutputName: name})
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return err
		}
		for _, in := range got.Recipe.Inputs {
			stack = append(stack, in.Name)
		}
	}
	return nil
}

func (r *redisRepository) GetRecipeByOutput(ctx context.Context, input GetRecipeByOutputInput) (*GetRecipeByOutputOutput, error) {
	if input.OutputName == "" {
		return nil, errors.InvalidArgument("output name cannot be empty")
	}

	result, err := r.client.Get(ctx, recipeKeyPrefix+input.OutputName).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no recipe produces %s", input.OutputName)
		}
		return nil, errors.Wrapf(err, "failed to get recipe for %s", input.OutputName)
	}

	var recipe Recipe
	if err := json.Unmarshal([]byte(result), &recipe); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal recipe")
	}
	return &GetRecipeByOutputOutput{Recipe: recipe}, nil
}

func (r *redisRepository) ListRecipes(ctx context.Context) (*ListRecipesOutput, error) {
	names, err := r.client.SMembers(ctx, recipeIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}
	sort.Strings(names)

	out := &ListRecipesOutput{Recipes: make([]Recipe, 0, len(names))}
	for _, name := range names {
		got, err := r.GetRecipeByOutput(ctx, GetRecipeByOutputInput{OutputName: name})
		if err != nil {
			return nil, err
		}
		out.Recipes = append(out.Recipes, got.Recipe)
	}
	return out, nil
}

func (r *redisRepository) DeleteRecipe(ctx context.Context, input DeleteRecipeInput) (*DeleteRecipeOutput, error) {
	if input.OutputName == "" {
		return nil, errors.InvalidArgument("output name cannot be empty")
	}

	key := recipeKeyPrefix + input.OutputName
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check recipe for %s", input.OutputName)
	}
	if exists == 0 {
		return nil, errors.NotFoundf("no recipe produces %s", input.OutputName)
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete recipe for %s", input.OutputName)
	}
	if err := r.client.SRem(ctx, recipeIndexKey, input.OutputName).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to unindex recipe for %s", input.OutputName)
	}
	return &DeleteRecipeOutput{}, nil
}
