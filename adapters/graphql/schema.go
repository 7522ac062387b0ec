package graphql

// Schema is the full GraphQL surface. Mutations return payload types rather
// than raising: business failures arrive in userErrors with a null result
// field, so clients check userErrors instead of transport status.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		me: User
		posts: [Post!]!
		myPosts: [Post!]!
	}

	type Mutation {
		signup(credentials: CredentialsInput!, name: String, bio: String): AuthPayload!
		signin(credentials: CredentialsInput!): AuthPayload!
		postCreate(post: PostInput!): PostPayload!
		postUpdate(postId: ID!, post: PostInput!): PostPayload!
		postDelete(postId: ID!): PostPayload!
		postPublish(postId: ID!): PostPayload!
		postUnpublish(postId: ID!): PostPayload!
	}

	input CredentialsInput {
		email: String!
		password: String!
	}

	input PostInput {
		title: String
		content: String
	}

	type UserError {
		message: String!
	}

	type AuthPayload {
		userErrors: [UserError!]!
		token: String
	}

	type PostPayload {
		userErrors: [UserError!]!
		post: Post
	}

	type User {
		id: ID!
		email: String!
		name: String!
		profile: Profile
	}

	type Profile {
		id: ID!
		bio: String!
	}

	type Post {
		id: ID!
		title: String!
		content: String!
		published: Boolean!
		author: User!
	}
`
